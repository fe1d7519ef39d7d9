package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/SergeyKozhin/user-profiles-backend/internal/model"
	"github.com/spf13/cobra"
)

var (
	listVariant   string
	listSearch    string
	listFavorites bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Fetch the users once and print the visible ones",
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listVariant, "variant", "basic", "variant to load")
	listCmd.Flags().StringVar(&listSearch, "search", "", "filter by name, email or company")
	listCmd.Flags().BoolVar(&listFavorites, "favorites", false, "show favorites only")
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	service, err := newService(ctx)
	if err != nil {
		return err
	}

	session, err := service.Session(listVariant)
	if err != nil {
		return err
	}

	if err := session.SetFilter(model.UsersFilter{Search: listSearch, FavoritesOnly: listFavorites}); err != nil {
		return fmt.Errorf("variant %q: %w", listVariant, err)
	}

	view, err := session.View(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, view.Variant.Title)

	if view.Empty != nil {
		fmt.Fprintf(out, "%s\n%s\n", view.Empty.Title, view.Empty.Subtitle)
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tCOMPANY\tFAVORITE")
	for _, u := range view.Users {
		favorite := ""
		if view.Favorites.Contains(u.ID) {
			favorite = "*"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, u.Company.Name, favorite)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if view.Summary != "" {
		fmt.Fprintln(out, view.Summary)
	}

	return nil
}
