package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewCacheCmd creates the "cache" maintenance command group.
func NewCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Cache maintenance commands",
	}
	cmd.AddCommand(newCacheInfoCmd(), newCacheClearCmd())
	return cmd
}

func newCacheInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show cache location and statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := newStore(cmd)
			if err != nil {
				return err
			}

			if !store.IsEnabled() {
				cmd.Println("Cache is disabled.")
				return nil
			}

			count, err := store.Count()
			if err != nil {
				return fmt.Errorf("counting cache entries: %w", err)
			}
			size, err := store.Size()
			if err != nil {
				return fmt.Errorf("sizing cache: %w", err)
			}

			cmd.Printf("Directory:\t%s\n", store.Directory())
			cmd.Printf("Entries:\t%d\n", count)
			cmd.Printf("Size:\t\t%d bytes\n", size)
			return nil
		},
	}
}

func newCacheClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached responses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := newStore(cmd)
			if err != nil {
				return err
			}

			if !store.IsEnabled() {
				cmd.Println("Cache is disabled.")
				return nil
			}

			if err := store.Clear(); err != nil {
				return fmt.Errorf("clearing cache: %w", err)
			}
			cmd.Println("Cache cleared.")
			return nil
		},
	}
}
