package main

import (
	"mapbook/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.AddressModel{},
		model.CommentModel{},
		model.ProfileModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
