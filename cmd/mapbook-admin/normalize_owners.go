package main

import (
	"context"
	"fmt"
	"io"

	"mapbook/internal/domain/entity"
	"mapbook/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newNormalizeOwnersCommand() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "normalize-owners",
		Short: "Lower-case the owner email of every stored address",
		Long: "Owner emails are compared case-insensitively when resolving visibility, " +
			"but records written by older clients may carry mixed case. This rewrites them in place.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var addresses repository.AddressRepository

			return withStore(cmd.Context(), func() error {
				_, err := normalizeOwners(cmd.Context(), addresses, dryRun, cmd.OutOrStdout())

				return err
			}, &addresses)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report the records that would change without writing")

	return cmd
}

// normalizeOwners rewrites owners that differ from their normalized form and returns how many did.
func normalizeOwners(ctx context.Context, repo repository.AddressRepository, dryRun bool, out io.Writer) (int, error) {
	addresses, err := repo.FindWhere(ctx, repository.Filter{})
	if err != nil {
		return 0, errors.Wrap(err, "failed to list addresses")
	}

	changed := 0
	for _, address := range addresses {
		normalized := entity.NormalizeEmail(address.User)
		if normalized == address.User {
			continue
		}
		changed++

		fmt.Fprintf(out, "%s: %q -> %q\n", address.ID, address.User, normalized)
		if dryRun {
			continue
		}
		if err := repo.SetOwner(ctx, address.ID, normalized); err != nil {
			return changed, errors.Wrapf(err, "failed to update owner of %s", address.ID)
		}
	}

	verb := "updated"
	if dryRun {
		verb = "would update"
	}
	fmt.Fprintf(out, "%s %d of %d address(es)\n", verb, changed, len(addresses))

	return changed, nil
}
