package news

import (
	"github.com/edicola-dev/edicola/cmd/util"
	"github.com/edicola-dev/edicola/rpc/client"
	"github.com/spf13/cobra"
)

var (
	rpcNews client.INewsClient

	// NewsCommands represents the news command group
	NewsCommands = &cobra.Command{
		Use:               "news",
		Short:             "Perform submission and listing operations",
		PersistentPreRunE: setupNewsClient,
	}
)

func init() {
	// Initialize viper
	cobra.OnInitialize(util.InitClientConfig)

	// Add common RPC flags to the news command
	util.SetupRPCClientFlags(NewsCommands)

	// Add subcommands
	NewsCommands.AddCommand(submitCmd)
	NewsCommands.AddCommand(editCmd)
	NewsCommands.AddCommand(delCmd)
	NewsCommands.AddCommand(voteCmd)
	NewsCommands.AddCommand(showCmd)
	NewsCommands.AddCommand(urlCmd)
	NewsCommands.AddCommand(topCmd)
	NewsCommands.AddCommand(latestCmd)
	NewsCommands.AddCommand(savedCmd)
	NewsCommands.AddCommand(postedCmd)
	NewsCommands.AddCommand(perfTestCmd)
}

// setupNewsClient initializes the RPC news client
func setupNewsClient(cmd *cobra.Command, _ []string) error {
	// Bind command flags to viper
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}

	// Get client configuration components
	config := util.GetClientConfig()

	// Get serializer and transport
	s, err := util.GetSerializer()
	if err != nil {
		return err
	}

	t, err := util.GetTransport()
	if err != nil {
		return err
	}

	// Create the news client
	rpcNews, err = client.NewRPCNewsClient(
		*config,
		t,
		s,
	)

	return err
}
