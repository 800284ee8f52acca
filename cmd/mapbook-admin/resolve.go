package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"mapbook/internal/domain/entity"
	"mapbook/internal/usecase"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newResolveCommand() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "List the addresses visible to a user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var resolver usecase.VisibilityUsecase

			return withStore(cmd.Context(), func() error {
				addresses, err := resolver.Resolve(cmd.Context(), entity.NewIdentity("", email))
				if err != nil {
					return err
				}

				return printAddresses(cmd.OutOrStdout(), addresses)
			}, &resolver)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email of the user to resolve for")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func printAddresses(out io.Writer, addresses []*entity.Address) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tOWNER\tPUBLIC\tLATITUDE\tLONGITUDE")
	for _, address := range addresses {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			address.ID,
			address.Name,
			address.User,
			strconv.FormatBool(address.IsPublic),
			strconv.FormatFloat(address.Latitude, 'f', 6, 64),
			strconv.FormatFloat(address.Longitude, 'f', 6, 64),
		)
	}
	fmt.Fprintf(w, "\n%d address(es)\n", len(addresses))

	return errors.WithStack(w.Flush())
}
