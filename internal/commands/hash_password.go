package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"certportal/internal/auth"

	"github.com/spf13/cobra"
)

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password [password]",
	Short: "Print the argon2id digest to use as admin.password_hash.",
	Long: `Print the argon2id digest to use as admin.password_hash or ADMIN_PASSWORD_HASH.
The password is read from the first line of stdin when it is not given as an argument.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var password string
		if len(args) == 1 {
			password = args[0]
		} else {
			line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && !errors.Is(err, io.EOF) {
				return fmt.Errorf("failed to read password: %w", err)
			}
			password = strings.TrimRight(line, "\r\n")
		}

		digest, err := auth.HashPassword(password)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), digest)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(hashPasswordCmd)
}
