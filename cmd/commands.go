// Copyright 2025.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/Adembc/netuse/internal/adapters/ui"
	"github.com/Adembc/netuse/internal/core/domain"
	"github.com/atotto/clipboard"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

type credentialFlags struct {
	user          string
	password      string
	passwordStdin bool
}

func (f *credentialFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.user, "user", "u", "", "Account to connect as, user or user@domain")
	cmd.Flags().StringVar(&f.password, "password", "", "Password for --user (visible in the process list, prefer --password-stdin)")
	cmd.Flags().BoolVar(&f.passwordStdin, "password-stdin", false, "Read the password from stdin, prompting when it is a terminal")
	cmd.MarkFlagsMutuallyExclusive("password", "password-stdin")
}

func (a *app) newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:               "netuse",
		Short:             "Map, list and remove Windows network drives",
		Version:           fmt.Sprintf("%s (%s)", version, gitCommit),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runList(cmd, false)
		},
	}

	root.AddCommand(
		a.newListCommand(),
		a.newUseCommand(),
		a.newDeleteCommand(),
		a.newShowCommand(),
		a.newApplyCommand(),
		a.newProbeCommand(),
		a.newForgetCommand(),
		a.newUICommand(),
	)
	return root
}

func (a *app) newListCommand() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List mapped network drives",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runList(cmd, asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of a table")
	return cmd
}

func (a *app) runList(cmd *cobra.Command, asJSON bool) error {
	conns, err := a.service.List(cmd.Context())
	if err != nil {
		return err
	}
	if asJSON {
		return printJSON(a.out, conns)
	}
	printConnections(a.out, conns)
	return nil
}

func (a *app) newUseCommand() *cobra.Command {
	var (
		creds      credentialFlags
		persistent bool
		saveCred   bool
		smartcard  bool
		probe      bool
		remember   bool
		saveAs     string
	)
	cmd := &cobra.Command{
		Use:   "use DRIVE PATH",
		Short: `Map a network share to a drive letter, e.g. netuse use P: \\fs01\projects`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			drive, path := strings.ToUpper(args[0]), args[1]

			cred, err := a.credential(creds)
			if err != nil {
				return err
			}
			if remember && cred == nil {
				return domain.NewInvalidArgument("--remember needs --user", "")
			}

			opts := domain.ConnectOptions{Probe: probe, SaveCred: saveCred, Smartcard: smartcard}
			if cmd.Flags().Changed("persistent") {
				opts.Persistent = &persistent
			}

			conn, err := a.service.Connect(cmd.Context(), drive, path, cred, opts)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(a.out, "%s is now connected to %s\n", conn.DriveLetter, conn.Path)

			if remember && cred.Password != "" {
				if err := a.store.SetPassword(cred.Domain, cred.Username, cred.Password); err != nil {
					return errors.Wrap(err, "drive mapped but the password was not stored")
				}
				a.log.Infow("password stored", "account", cred.Account())
			}

			if saveAs != "" {
				mapping := domain.Mapping{
					Name:       saveAs,
					Drive:      conn.DriveLetter,
					Path:       conn.Path,
					Persistent: opts.Persistent,
					SaveCred:   saveCred,
					Smartcard:  smartcard,
				}
				if cred != nil {
					mapping.User = cred.Username
					mapping.Domain = cred.Domain
				}
				if err := a.configRepo.SaveMapping(mapping); err != nil {
					return errors.Wrap(err, "drive mapped but the mapping was not saved")
				}
				_, _ = fmt.Fprintf(a.out, "saved as %q\n", saveAs)
			}
			return nil
		},
	}
	creds.register(cmd)
	cmd.Flags().BoolVar(&persistent, "persistent", false, "Restore the mapping at next logon (--persistent=false to forget it)")
	cmd.Flags().BoolVar(&saveCred, "savecred", false, "Let Windows store the credential")
	cmd.Flags().BoolVar(&smartcard, "smartcard", false, "Use the smart card credential")
	cmd.Flags().BoolVar(&probe, "probe", false, "Check the share over SMB before mapping it")
	cmd.Flags().BoolVar(&remember, "remember", false, "Store the password in the OS keyring for later use")
	cmd.Flags().StringVar(&saveAs, "save", "", "Save the mapping under NAME for 'netuse apply'")
	return cmd
}

func (a *app) newDeleteCommand() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:     "delete DRIVE",
		Aliases: []string{"rm"},
		Short:   "Disconnect a mapped drive",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			drive := strings.ToUpper(args[0])
			conn := domain.NewConnection(drive, "")
			// A dry run has no listing to look the drive up in.
			if !a.flags.IsDryRun() {
				found, err := a.service.Find(cmd.Context(), drive)
				if err != nil {
					return err
				}
				conn = found
			}
			conn, err := a.service.Delete(cmd.Context(), conn, force)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(a.out, "%s was deleted successfully\n", conn.DriveLetter)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Disconnect even when files on the share are open")
	return cmd
}

func (a *app) newShowCommand() *cobra.Command {
	var copyPath bool
	cmd := &cobra.Command{
		Use:   "show DRIVE",
		Short: "Show one mapped drive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := a.service.Find(cmd.Context(), strings.ToUpper(args[0]))
			if err != nil {
				return err
			}
			printConnection(a.out, conn)
			if copyPath {
				if err := clipboard.WriteAll(conn.Path); err != nil {
					return errors.Wrap(err, "copy to clipboard")
				}
				_, _ = fmt.Fprintln(a.errOut, "path copied to clipboard")
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&copyPath, "copy", "c", false, "Copy the remote path to the clipboard")
	return cmd
}

func (a *app) newApplyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "apply [NAME...]",
		Short: "Map the drives saved in the configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			mappings, err := a.configRepo.Mappings(args...)
			if err != nil {
				return err
			}
			if len(mappings) == 0 {
				_, _ = fmt.Fprintln(a.errOut, "no mappings configured")
				return nil
			}
			applied, err := a.service.Apply(cmd.Context(), mappings)
			if len(applied) > 0 {
				printConnections(a.out, applied)
			}
			return err
		},
	}
}

func (a *app) newProbeCommand() *cobra.Command {
	var creds credentialFlags
	cmd := &cobra.Command{
		Use:   "probe PATH",
		Short: "Check that a share accepts the credential without mapping it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cred, err := a.credential(creds)
			if err != nil {
				return err
			}
			if cred != nil && cred.Password == "" && a.config.UseKeyring {
				password, err := a.store.Password(cred.Domain, cred.Username)
				if err != nil {
					return err
				}
				cred = cred.WithPassword(password)
			}
			if err := a.prober.Probe(cmd.Context(), args[0], cred); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(a.out, "%s is reachable\n", args[0])
			return nil
		},
	}
	creds.register(cmd)
	return cmd
}

func (a *app) newForgetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "forget USER",
		Short: "Remove a password stored with 'use --remember'",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cred, err := domain.NewCredential(args[0], "", "", false, false)
			if err != nil {
				return err
			}
			if err := a.store.DeletePassword(cred.Domain, cred.Username); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(a.out, "forgot password for %s\n", cred.Account())
			return nil
		},
	}
}

func (a *app) newUICommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Browse mapped drives in a terminal UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return ui.NewTUI(cmd.Context(), a.log, a.service, version).Run()
		},
	}
}

// credential builds the credential named by the flags, or nil without --user.
func (a *app) credential(f credentialFlags) (*domain.Credential, error) {
	if f.user == "" {
		if f.password != "" || f.passwordStdin {
			return nil, domain.NewInvalidArgument("a password was given without --user", "add --user NAME[@DOMAIN]")
		}
		return nil, nil
	}

	password := f.password
	if f.passwordStdin {
		secret, err := a.readPassword()
		if err != nil {
			return nil, err
		}
		password = secret
	}
	return domain.NewCredential(f.user, "", password, false, false)
}

// readPassword prompts on a terminal and otherwise reads the first line of stdin.
func (a *app) readPassword() (string, error) {
	secret, ok, err := a.readSecret()
	if ok || err != nil {
		return secret, err
	}

	line, err := bufio.NewReader(a.in).ReadString('\n')
	if err != nil && line == "" {
		return "", errors.Wrap(err, "read password from stdin")
	}
	return strings.TrimRight(line, "\r\n"), nil
}
