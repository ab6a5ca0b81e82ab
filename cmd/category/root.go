package category

import (
	"fmt"
	"strconv"

	"github.com/edicola-dev/edicola/cmd/util"
	"github.com/edicola-dev/edicola/rpc/client"
	"github.com/spf13/cobra"
)

var (
	rpcNews client.INewsClient

	// CategoryCommands represents the category command group
	CategoryCommands = &cobra.Command{
		Use:               "category",
		Short:             "Perform category operations",
		PersistentPreRunE: setupCategoryClient,
	}

	createCmd = &cobra.Command{
		Use:   "create [code]",
		Short: "Creates a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := rpcNews.CreateCategory(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("category created, id=%d, code=%s\n", cat.ID, cat.Code)
			return nil
		},
	}

	showCmd = &cobra.Command{
		Use:   "show [id]",
		Short: "Shows a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("id must be a number: %w", err)
			}
			cat, err := rpcNews.FindCategory(id)
			if err != nil {
				return err
			}
			if cat == nil {
				fmt.Println("no category with that id")
				return nil
			}
			fmt.Printf("id=%d, code=%s\n", cat.ID, cat.Code)
			return nil
		},
	}

	findCmd = &cobra.Command{
		Use:   "find [code]",
		Short: "Looks up a category by code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := rpcNews.FindCategoryByCode(args[0])
			if err != nil {
				return err
			}
			if cat == nil {
				fmt.Println("no category with that code")
				return nil
			}
			fmt.Printf("id=%d, code=%s\n", cat.ID, cat.Code)
			return nil
		},
	}
)

func init() {
	// Initialize viper
	cobra.OnInitialize(util.InitClientConfig)

	// Add common RPC flags to the category command
	util.SetupRPCClientFlags(CategoryCommands)

	// Add subcommands
	CategoryCommands.AddCommand(createCmd)
	CategoryCommands.AddCommand(showCmd)
	CategoryCommands.AddCommand(findCmd)
}

// setupCategoryClient initializes the RPC news client
func setupCategoryClient(cmd *cobra.Command, _ []string) error {
	// Bind command flags to viper
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}

	config := util.GetClientConfig()

	s, err := util.GetSerializer()
	if err != nil {
		return err
	}

	t, err := util.GetTransport()
	if err != nil {
		return err
	}

	rpcNews, err = client.NewRPCNewsClient(
		*config,
		t,
		s,
	)

	return err
}
