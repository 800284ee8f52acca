package postgres

import (
	"mapbook/internal/domain/entity"
	"mapbook/internal/infra/persistence/model"
)

func toAddressDomain(m *model.AddressModel) *entity.Address {
	return &entity.Address{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Latitude:    m.Latitude,
		Longitude:   m.Longitude,
		ImageURL:    m.ImageURL,
		IsPublic:    m.IsPublic,
		User:        m.UserEmail,
		CreatedAt:   m.CreatedAt,
	}
}

func fromAddressDomain(address *entity.Address) *model.AddressModel {
	return &model.AddressModel{
		ID:          address.ID,
		Name:        address.Name,
		Description: address.Description,
		Latitude:    address.Latitude,
		Longitude:   address.Longitude,
		ImageURL:    address.ImageURL,
		IsPublic:    address.IsPublic,
		UserEmail:   address.User,
		CreatedAt:   address.CreatedAt,
	}
}

func toCommentDomain(m *model.CommentModel) *entity.Comment {
	return &entity.Comment{
		ID:        m.ID,
		Text:      m.Text,
		Rating:    m.Rating,
		ImageURL:  m.ImageURL,
		User:      m.UserEmail,
		CreatedAt: m.CreatedAt,
	}
}

func fromCommentDomain(addressID string, comment *entity.Comment) *model.CommentModel {
	return &model.CommentModel{
		ID:        comment.ID,
		AddressID: addressID,
		Text:      comment.Text,
		Rating:    comment.Rating,
		ImageURL:  comment.ImageURL,
		UserEmail: comment.User,
		CreatedAt: comment.CreatedAt,
	}
}
