package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"career-match/internal/domain/user"
	ucauth "career-match/internal/usecase/auth"

	"github.com/spf13/cobra"
)

var recommendEmail string

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Print the recommendations for one user as JSON",
	RunE:  runRecommend,
}

func init() {
	recommendCmd.Flags().StringVarP(&recommendEmail, "email", "e", "", "email of the user (required)")
	if err := recommendCmd.MarkFlagRequired("email"); err != nil {
		panic(fmt.Sprintf("failed to mark email flag as required: %v", err))
	}
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	email := ucauth.NormalizeEmail(recommendEmail)
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("invalid email %q", recommendEmail)
	}

	c, err := openContainer()
	if err != nil {
		return err
	}
	defer func() {
		_ = c.Close()
	}()

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	usr, err := c.Users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return fmt.Errorf("no user with email %s", email)
		}
		return err
	}

	rec, err := c.RecommendUC.GetRecommendations(ctx, usr.ID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(rec)
}
