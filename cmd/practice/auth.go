package main

import (
	"fmt"
	"recon_backend/internal/practice"

	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and save the session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		return login(cmd, email, password)
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account and log in",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		client, _, err := newClient(cmd)
		if err != nil {
			return err
		}
		if err := client.Register(cmd.Context(), name, email, password); err != nil {
			return fmt.Errorf("register: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Account created.")
		return login(cmd, email, password)
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Revoke the saved session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, tokenPath, err := newClient(cmd)
		if err != nil {
			return err
		}

		// 服务端已失效的 token 同样清理本地文件
		if err := client.Logout(cmd.Context()); err != nil && !practice.IsUnauthorized(err) {
			return fmt.Errorf("logout: %w", err)
		}
		if err := practice.ClearToken(tokenPath); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
		return nil
	},
}

func login(cmd *cobra.Command, email, password string) error {
	tokenPath, err := resolveTokenPath(cmd)
	if err != nil {
		return err
	}

	client := practice.NewClient(resolveServer(cmd), "", nil)
	token, err := client.Login(cmd.Context(), email, password)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if err := practice.SaveToken(tokenPath, token); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s.\n", email)
	return nil
}

func init() {
	for _, c := range []*cobra.Command{loginCmd, registerCmd} {
		c.Flags().String("email", "", "Account email")
		c.Flags().String("password", "", "Account password")
		_ = c.MarkFlagRequired("email")
		_ = c.MarkFlagRequired("password")
	}
	registerCmd.Flags().String("name", "", "Display name")
	_ = registerCmd.MarkFlagRequired("name")
}
