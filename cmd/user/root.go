package user

import (
	"fmt"
	"strconv"

	"github.com/edicola-dev/edicola/cmd/util"
	"github.com/edicola-dev/edicola/rpc/client"
	"github.com/spf13/cobra"
)

var (
	rpcNews client.INewsClient

	// UserCommands represents the user command group
	UserCommands = &cobra.Command{
		Use:               "user",
		Short:             "Perform user account operations",
		PersistentPreRunE: setupUserClient,
	}

	createCmd = &cobra.Command{
		Use:   "create [name] [email]",
		Short: "Creates a user account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := rpcNews.CreateUser(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Printf("user created, id=%d, karma=%d\n", user.ID, user.Karma)
			return nil
		},
	}

	showCmd = &cobra.Command{
		Use:   "show [id]",
		Short: "Shows a user account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("id must be a number: %w", err)
			}
			user, err := rpcNews.FindUser(id)
			if err != nil {
				return err
			}
			if user == nil {
				fmt.Println("no user with that id")
				return nil
			}
			fmt.Printf("id=%d, name=%s, email=%s, karma=%d\n", user.ID, user.Name, user.Email, user.Karma)
			return nil
		},
	}

	findCmd = &cobra.Command{
		Use:   "find [email]",
		Short: "Looks up a user account by email",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := rpcNews.FindUserByEmail(args[0])
			if err != nil {
				return err
			}
			if user == nil {
				fmt.Println("no user with that email")
				return nil
			}
			fmt.Printf("id=%d, name=%s, email=%s, karma=%d\n", user.ID, user.Name, user.Email, user.Karma)
			return nil
		},
	}
)

func init() {
	// Initialize viper
	cobra.OnInitialize(util.InitClientConfig)

	// Add common RPC flags to the user command
	util.SetupRPCClientFlags(UserCommands)

	// Add subcommands
	UserCommands.AddCommand(createCmd)
	UserCommands.AddCommand(showCmd)
	UserCommands.AddCommand(findCmd)
}

// setupUserClient initializes the RPC news client
func setupUserClient(cmd *cobra.Command, _ []string) error {
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
