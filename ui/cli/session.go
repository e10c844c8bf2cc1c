// Copyright (c) 2026 Rutero Team
// Rutero - tourism discovery companion
// This source code is licensed under the MIT license found in the LICENSE file.

// session.go holds the commands that manage the local session: login,
// logout, whoami, session inspection and the store backup/restore pair.

package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rutero-app/rutero/internal/i18n"
	"github.com/rutero-app/rutero/internal/session"
	"github.com/rutero-app/rutero/internal/store"
	"github.com/rutero-app/rutero/util/slicest"
)

func newLoginCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login [email]",
		Short: "Sign in to the tourism service",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var email string
			if len(args) == 1 {
				email = args[0]
			} else {
				fmt.Print(i18n.T("login.prompt_email"))
				reader := bufio.NewReader(os.Stdin)
				line, err := reader.ReadString('\n')
				if err != nil {
					return fmt.Errorf("could not read email: %w", err)
				}
				email = strings.TrimSpace(line)
			}

			if password == "" {
				fmt.Print(i18n.T("login.prompt_password"))
				raw, err := term.ReadPassword(int(os.Stdin.Fd()))
				fmt.Println()
				if err != nil {
					return fmt.Errorf("could not read password: %w", err)
				}
				password = string(raw)
			}

			if err := sessionMgr.SignIn(cmd.Context(), email, password); err != nil {
				return err
			}
			if msg := sessionMgr.Err(); msg != "" {
				return fmt.Errorf("%s", msg)
			}

			name := email
			if p := sessionMgr.Profile(); p != nil {
				name = p.FullName()
			}
			fmt.Println(i18n.Td("login.success", map[string]interface{}{"Name": name}))
			return nil
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "Password (prompted when omitted)")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and clear the local session",
		RunE: func(cmd *cobra.Command, args []string) error {
			sessionMgr.SignOut(cmd.Context())
			fmt.Println(i18n.T("logout.done"))
			return nil
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user's profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(cmd); err != nil {
				return err
			}
			p := sessionMgr.Profile()
			if p == nil {
				fmt.Println(i18n.T("whoami.profile_pending"))
				return nil
			}
			fmt.Printf("%s <%s>\n", p.FullName(), p.Email)
			fmt.Printf("  id: %d\n", p.ID)
			if p.PhoneNumber != "" {
				fmt.Printf("  phone: %s\n", p.PhoneNumber)
			}
			if p.LastLogin != nil {
				fmt.Printf("  last login: %s\n", p.LastLogin.Format(time.RFC3339))
			}
			if len(p.PreferredActivities) > 0 {
				ids := slicest.Map(p.PreferredActivities, strconv.Itoa)
				fmt.Printf("  preferred activities: %s\n", strings.Join(ids, ", "))
			}
			return nil
		},
	}
}

func newSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Inspect the local session",
	}
	cmd.AddCommand(newSessionStatusCmd(), newSessionTokenCmd())
	return cmd
}

func newSessionStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether a session is active and when it expires",
		RunE: func(cmd *cobra.Command, args []string) error {
			sessionMgr.Rehydrate(cmd.Context())
			token := sessionMgr.Token()
			if token == "" {
				fmt.Println(i18n.T("session.no_token"))
				return nil
			}

			info, err := session.InspectToken(token)
			if err != nil || info.ExpiresAt == nil {
				fmt.Println(i18n.T("session.opaque"))
				return nil
			}

			subject := info.Subject
			if p := sessionMgr.Profile(); p != nil {
				subject = p.Email
			}
			data := map[string]interface{}{
				"Subject": subject,
				"Expiry":  info.ExpiresAt.Local().Format(time.RFC822),
			}
			if info.Expired() {
				fmt.Println(i18n.Td("session.expired", data))
			} else {
				fmt.Println(i18n.Td("session.valid_until", data))
			}
			return nil
		},
	}
}

func newSessionTokenCmd() *cobra.Command {
	var copyToClipboard bool

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Print the raw access token (for curl and friends)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(cmd); err != nil {
				return err
			}
			token := sessionMgr.Token()
			if copyToClipboard {
				if err := clipboard.WriteAll(token); err != nil {
					return fmt.Errorf("could not copy token: %w", err)
				}
				fmt.Println(i18n.T("session.token_copied"))
				return nil
			}
			fmt.Println(token)
			return nil
		},
	}

	cmd.Flags().BoolVar(&copyToClipboard, "copy", false, "Copy the token to the clipboard instead of printing it")
	return cmd
}

func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "View and update the account profile",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Refresh and show the profile from the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(cmd); err != nil {
				return err
			}
			if err := sessionMgr.FetchUserProfile(cmd.Context(), sessionMgr.Token()); err != nil {
				return fmt.Errorf("%s", i18n.T("error.profile_fetch"))
			}
			p := sessionMgr.Profile()
			fmt.Printf("%s <%s>\n", p.FullName(), p.Email)
			return nil
		},
	}

	setActivities := &cobra.Command{
		Use:   "set-activities <id,id,...>",
		Short: "Update the preferred activities used for recommendations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(cmd); err != nil {
				return err
			}
			p := sessionMgr.Profile()
			if p == nil {
				return fmt.Errorf("%s", i18n.T("error.profile_fetch"))
			}

			ids, err := slicest.MapX(strings.Split(args[0], ","), func(part string) (int, error) {
				id, err := strconv.Atoi(strings.TrimSpace(part))
				if err != nil {
					return 0, fmt.Errorf("invalid activity id %q", part)
				}
				return id, nil
			})
			if err != nil {
				return err
			}

			if _, err = apiClient.Auth.UpdateAccount(cmd.Context(), p.ID, map[string]any{
				"preferred_activities": ids,
			}); err != nil {
				return err
			}
			// Refresh the cached copy so the change is visible offline too.
			_ = sessionMgr.FetchUserProfile(cmd.Context(), sessionMgr.Token())
			fmt.Println(i18n.T("profile.updated"))
			return nil
		},
	}

	cmd.AddCommand(show, setActivities)
	return cmd
}

func newBackupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backup [output-file]",
		Short: "Create a compressed (zstd) JSON backup of the local store",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outputFile := fmt.Sprintf("rutero-backup-%s.json.zst", time.Now().Format("2006-01-02"))
			if len(args) == 1 {
				outputFile = args[0]
				if !strings.HasSuffix(outputFile, ".zst") {
					outputFile += ".zst"
				}
			}

			f, err := os.Create(outputFile)
			if err != nil {
				return fmt.Errorf("could not create backup file: %w", err)
			}
			defer func() { _ = f.Close() }()

			if err := store.Export(cmd.Context(), kvStore, f); err != nil {
				return err
			}
			fmt.Println(i18n.Td("backup.written", map[string]interface{}{"Path": outputFile}))
			return nil
		},
	}
}

func newRestoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore <backup-file>",
		Short: "Restore the local store from a backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("could not open backup file: %w", err)
			}
			defer func() { _ = f.Close() }()

			if err := store.Import(cmd.Context(), kvStore, f); err != nil {
				return err
			}
			fmt.Println(i18n.Td("restore.done", map[string]interface{}{"Path": args[0]}))
			return nil
		},
	}
}
