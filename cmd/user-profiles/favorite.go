package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var favoriteVariant string

var favoriteCmd = &cobra.Command{
	Use:   "favorite <user id>",
	Short: "Toggle a user in the favorites of a variant",
	Args:  cobra.ExactArgs(1),
	RunE:  runFavorite,
}

func init() {
	favoriteCmd.Flags().StringVar(&favoriteVariant, "variant", "basic", "variant whose favorites are changed")
}

func runFavorite(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid user id %q", args[0])
	}

	ctx := context.Background()

	service, err := newService(ctx)
	if err != nil {
		return err
	}

	session, err := service.Session(favoriteVariant)
	if err != nil {
		return err
	}

	if err := session.Ensure(ctx); err != nil {
		return err
	}

	user, err := session.User(id)
	if err != nil {
		return fmt.Errorf("user %d: %w", id, err)
	}

	added, err := session.ToggleFavorite(ctx, id)
	if err != nil {
		return err
	}

	if added {
		fmt.Fprintf(cmd.OutOrStdout(), "Added to favorites: %s\n", user.Name)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Removed from favorites: %s\n", user.Name)
	}

	return nil
}
