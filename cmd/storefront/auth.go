package main

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/app"
	"storefront/internal/model"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
)

var askOne = survey.AskOne

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and remember the session",
	RunE:  runLogin,
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a customer or supplier account",
	RunE:  runRegister,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv()
		if err != nil {
			return err
		}
		defer e.Close()

		if !e.ctrl.Session().Authenticated() {
			cmd.Println("Not logged in.")
			return nil
		}
		cmd.Println(e.ctrl.Logout().Text)
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv()
		if err != nil {
			return err
		}
		defer e.Close()

		u, ok := e.ctrl.Session().User()
		if !ok {
			cmd.Println("Not logged in.")
			return nil
		}
		cmd.Printf("%s (%s)\n", u.Username, u.Role.Label())
		if u.Email != "" {
			cmd.Println(u.Email)
		}
		return nil
	},
}

func init() {
	loginCmd.Flags().StringP("username", "u", "", "Username")
	loginCmd.Flags().StringP("password", "p", "", "Password (prompted when omitted)")

	registerCmd.Flags().StringP("username", "u", "", "Username")
	registerCmd.Flags().StringP("email", "e", "", "Email address")
	registerCmd.Flags().StringP("password", "p", "", "Password (prompted when omitted)")
	registerCmd.Flags().String("role", "", "customer or supplier")

	rootCmd.AddCommand(loginCmd, registerCmd, logoutCmd, whoamiCmd)
}

// prompt fills *value with an answer to p unless it is already set.
func prompt(value *string, p survey.Prompt) error {
	if *value != "" {
		return nil
	}
	return askOne(p, value, survey.WithValidator(survey.Required))
}

func runLogin(cmd *cobra.Command, args []string) error {
	username, _ := cmd.Flags().GetString("username")
	password, _ := cmd.Flags().GetString("password")
	if err := prompt(&username, &survey.Input{Message: "Username:"}); err != nil {
		return err
	}
	if err := prompt(&password, &survey.Password{Message: "Password:"}); err != nil {
		return err
	}

	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), e.cfg.APITimeout)
	defer cancel()

	res, err := e.ctrl.Authenticate(ctx, username, password)
	var n app.Notice
	if err != nil {
		n = e.ctrl.LoginFailed(err)
	} else {
		n = e.ctrl.LoginSucceeded(res)
	}
	if n.Level == app.LevelError {
		return errors.New(n.Text)
	}
	cmd.Println(n.Text)
	return nil
}

func runRegister(cmd *cobra.Command, args []string) error {
	username, _ := cmd.Flags().GetString("username")
	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")
	roleName, _ := cmd.Flags().GetString("role")

	if err := prompt(&username, &survey.Input{Message: "Username:"}); err != nil {
		return err
	}
	if err := prompt(&email, &survey.Input{Message: "Email:"}); err != nil {
		return err
	}
	if err := prompt(&password, &survey.Password{Message: "Password:"}); err != nil {
		return err
	}
	if err := prompt(&roleName, &survey.Select{
		Message: "Account type:",
		Options: []string{"customer", "supplier"},
		Default: "customer",
	}); err != nil {
		return err
	}

	role, ok := model.ParseRole(roleName)
	if !ok || role == model.RoleAdmin {
		return fmt.Errorf("role must be customer or supplier, got %q", roleName)
	}

	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), e.cfg.APITimeout)
	defer cancel()

	if err := e.ctrl.Register(ctx, username, email, password, role); err != nil {
		return errors.New(e.ctrl.RegisterFailed(err).Text)
	}
	cmd.Println(e.ctrl.RegisterSucceeded().Text)
	return nil
}
