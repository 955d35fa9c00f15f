package main

import (
	"errors"
	"fmt"
	"os"
	"recon_backend/internal/practice"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
)

var errLoginRequired = errors.New("not logged in: run `practice login` first")

var rootCmd = &cobra.Command{
	Use:          "practice",
	Short:        "Answer random practice questions in the terminal",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSession(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("server", "", "Practice server URL (overrides RECON_SERVER env var)")
	rootCmd.PersistentFlags().String("token-file", "", "Path of the saved login token (overrides RECON_TOKEN_FILE env var)")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(logoutCmd)
}

// resolveServer returns --server, then RECON_SERVER, then the local default.
func resolveServer(cmd *cobra.Command) string {
	if s, _ := cmd.Flags().GetString("server"); s != "" {
		return s
	}
	if s := os.Getenv("RECON_SERVER"); s != "" {
		return s
	}
	return practice.DefaultServerURL
}

func resolveTokenPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("token-file"); p != "" {
		return p, nil
	}
	return practice.DefaultTokenPath()
}

// newClient builds a client carrying the saved token, if any.
func newClient(cmd *cobra.Command) (*practice.Client, string, error) {
	tokenPath, err := resolveTokenPath(cmd)
	if err != nil {
		return nil, "", err
	}
	token, err := practice.LoadToken(tokenPath)
	if err != nil {
		return nil, "", err
	}
	return practice.NewClient(resolveServer(cmd), token, nil), tokenPath, nil
}

func runSession(cmd *cobra.Command) error {
	client, _, err := newClient(cmd)
	if err != nil {
		return err
	}

	p := tea.NewProgram(practice.NewModel(cmd.Context(), client))
	final, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}

	if m, ok := final.(practice.Model); ok && m.LoginRequired() {
		fmt.Fprintln(os.Stderr, errLoginRequired)
		return errLoginRequired
	}
	return nil
}
