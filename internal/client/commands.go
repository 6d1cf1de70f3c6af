package client

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/MKhiriev/go-ipass/internal/service"
	"github.com/MKhiriev/go-ipass/internal/workers"
	"github.com/MKhiriev/go-ipass/models"
)

const (
	flagClip = "clip"
	flagYes  = "y"
)

// commandSpec is one row of the command table.
type commandSpec struct {
	name     string
	args     string
	synopsis string
	minArgs  int
	maxArgs  int
	flags    []string
	// noSync commands run without the sync import/export around them.
	noSync bool
	run    func(inv *invocation, ctx context.Context) error
}

var commandTable = []commandSpec{
	{name: "list", synopsis: "list all saved entries", run: (*invocation).list},
	{
		name: "add", args: "<name> <username> [password]", minArgs: 2, maxArgs: 3,
		synopsis: "create an entry; a diceware password is generated when none is given",
		run:      (*invocation).add,
	},
	{
		name: "get", args: "[-clip] <name>", minArgs: 1, maxArgs: 1, flags: []string{flagClip},
		synopsis: "show an entry",
		run:      (*invocation).get,
	},
	{
		name: "changepw", args: "<name> [password]", minArgs: 1, maxArgs: 2,
		synopsis: "change the password of an entry",
		run:      (*invocation).changePassword,
	},
	{
		name: "changeuser", args: "<name> [username]", minArgs: 1, maxArgs: 2,
		synopsis: "change the username of an entry",
		run:      (*invocation).changeUsername,
	},
	{
		name: "rename", args: "<name> <new-name>", minArgs: 2, maxArgs: 2,
		synopsis: "rename an entry",
		run:      (*invocation).rename,
	},
	{
		name: "remove", args: "[-y] <name>", minArgs: 1, maxArgs: 1, flags: []string{flagYes},
		synopsis: "remove an entry",
		run:      (*invocation).remove,
	},
	{
		name: "clear", args: "[-y]", flags: []string{flagYes},
		synopsis: "remove all entries",
		run:      (*invocation).clear,
	},
	{
		name: "export", args: "[-y] [dir]", maxArgs: 1, flags: []string{flagYes},
		synopsis: "write all entries to <dir>/export.<ext>, default dir is home",
		run:      (*invocation).export,
	},
	{
		name: "import", args: "[-y] [dir]", maxArgs: 1, flags: []string{flagYes},
		synopsis: "read entries from <dir>/export.<ext>, default dir is home",
		run:      (*invocation).importArchive,
	},
	{
		name: "sync", args: "on [dir] | off", minArgs: 1, maxArgs: 2, noSync: true,
		synopsis: "keep the vault in sync with an archive in a shared directory",
		run:      (*invocation).sync,
	},
	{name: "version", synopsis: "explain the current version", noSync: true, run: (*invocation).version},
	{name: "browse", synopsis: "browse entries interactively", run: (*invocation).browse},
}

func (inv *invocation) list(ctx context.Context) error {
	var names []string
	for name, err := range inv.app.services.VaultService.List(ctx) {
		if err != nil {
			return err
		}
		names = append(names, name)
	}

	if len(names) == 0 {
		inv.out.Println("No entries yet!")
		return nil
	}

	slices.Sort(names)
	inv.out.Printf("Total entries: %d\n\n", len(names))
	for _, name := range names {
		inv.out.Printf("Entry: %q\n", name)
	}
	return nil
}

func (inv *invocation) add(ctx context.Context) error {
	name, username := inv.args[0], inv.args[1]

	var password string
	if len(inv.args) == 3 {
		password = strings.TrimSpace(inv.args[2])
	} else {
		generated, err := inv.app.passwords.Generate()
		if err != nil {
			return err
		}
		password = generated
		inv.out.Println("Using auto generated password")
	}

	passphrase, err := inv.masterPassword()
	if err != nil {
		return err
	}

	record := models.EntryRecord{Username: username, Password: password}
	if err := inv.app.services.VaultService.Create(ctx, passphrase, name, record); err != nil {
		return err
	}

	inv.out.Success("Added password for %s", name)
	return nil
}

func (inv *invocation) get(ctx context.Context) error {
	name := inv.args[0]
	if err := inv.requireEntry(ctx, name); err != nil {
		return err
	}

	passphrase, err := inv.masterPassword()
	if err != nil {
		return err
	}

	record, err := inv.app.services.VaultService.Read(ctx, passphrase, name)
	if err != nil {
		return err
	}

	inv.out.Field("Username", record.Username)
	if inv.opts.clip {
		if err := inv.app.copyText(record.Password); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		inv.out.Success("Password copied to clipboard")
		return nil
	}
	inv.out.Field("Password", record.Password)
	return nil
}

func (inv *invocation) changePassword(ctx context.Context) error {
	name := inv.args[0]
	if err := inv.requireEntry(ctx, name); err != nil {
		return err
	}

	password, err := inv.argOrSecret(1, "Please enter the new password: ")
	if err != nil {
		return err
	}

	passphrase, err := inv.masterPassword()
	if err != nil {
		return err
	}

	if err := inv.app.services.VaultService.ChangePassword(ctx, passphrase, name, password); err != nil {
		return err
	}

	inv.out.Success("Changed Password of %s!", name)
	return nil
}

func (inv *invocation) changeUsername(ctx context.Context) error {
	name := inv.args[0]
	if err := inv.requireEntry(ctx, name); err != nil {
		return err
	}

	var username string
	if len(inv.args) == 2 {
		username = inv.args[1]
	} else {
		line, err := inv.app.prompter.Line("Enter new Username: ")
		if err != nil {
			return err
		}
		username = strings.TrimSpace(line)
	}

	passphrase, err := inv.masterPassword()
	if err != nil {
		return err
	}

	if err := inv.app.services.VaultService.ChangeUsername(ctx, passphrase, name, username); err != nil {
		return err
	}

	inv.out.Success("Changed Username of %s!", name)
	return nil
}

func (inv *invocation) rename(ctx context.Context) error {
	oldName, newName := inv.args[0], inv.args[1]
	if err := inv.requireEntry(ctx, oldName); err != nil {
		return err
	}

	passphrase, err := inv.masterPassword()
	if err != nil {
		return err
	}

	if err := inv.app.services.VaultService.Rename(ctx, passphrase, oldName, newName); err != nil {
		return err
	}

	inv.out.Success("Renamed %s to %s", oldName, newName)
	return nil
}

func (inv *invocation) remove(ctx context.Context) error {
	name := inv.args[0]
	if err := inv.requireEntry(ctx, name); err != nil {
		return err
	}

	if err := inv.confirm(fmt.Sprintf("Are you sure you want to delete %s? [y/N] ", name), false); err != nil {
		return err
	}

	if err := inv.app.services.VaultService.Remove(ctx, name); err != nil {
		return err
	}

	inv.out.Success("Removed entry %q", name)
	return nil
}

func (inv *invocation) clear(ctx context.Context) error {
	if err := inv.confirm("Are you sure you want to clear everything? [y/N] ", false); err != nil {
		return err
	}

	n, err := inv.app.services.VaultService.Clear(ctx)
	if err != nil {
		return err
	}

	inv.out.Success("Cleared %d entries!", n)
	return nil
}

func (inv *invocation) export(ctx context.Context) error {
	dir, err := inv.location()
	if err != nil {
		return err
	}

	report, err := inv.app.services.ArchiveService.Export(ctx, dir)
	if err != nil {
		return err
	}

	for _, skipped := range report.Skipped {
		inv.out.Warn("Skipped %q: %v", skipped.Name, skipped.Err)
	}
	inv.out.Success("Saved %d entries at: '%s'", report.Exported, report.Path)
	return nil
}

func (inv *invocation) importArchive(ctx context.Context) error {
	dir, err := inv.location()
	if err != nil {
		return err
	}

	n, err := inv.app.services.ArchiveService.Import(ctx, dir)
	if err != nil {
		return err
	}

	inv.out.Success("Imported %d entries!", n)
	return nil
}

func (inv *invocation) sync(ctx context.Context) error {
	switch strings.ToLower(inv.args[0]) {
	case "on":
		return inv.syncOn(ctx)
	case "off":
		if len(inv.args) > 1 {
			return usageErr("sync off takes no directory")
		}
		was, err := inv.app.sync.Disable()
		if err != nil {
			return err
		}
		if !was {
			inv.out.Println("Sync is already disabled!")
			return nil
		}
		inv.out.Success("Sync is now Disabled!")
		return nil
	default:
		return usageErr("sync expects on or off, got %q", inv.args[0])
	}
}

func (inv *invocation) syncOn(ctx context.Context) error {
	var dir string
	if len(inv.args) == 2 {
		dir = inv.args[1]
	} else {
		line, err := inv.app.prompter.Line("No location specified, please provide the directory to sync with: ")
		if err != nil {
			return err
		}
		dir = strings.TrimSpace(line)
	}
	if dir == "" {
		return usageErr("sync on needs a directory")
	}

	if err := inv.app.sync.Enable(dir); err != nil {
		return err
	}

	syncDir, err := inv.app.sync.Dir()
	if err != nil {
		return err
	}

	// First push doubles as a check that the directory is usable.
	if err := workers.NewSyncExport(inv.app.services.ArchiveService, syncDir).Run(ctx); err != nil {
		if _, derr := inv.app.sync.Disable(); derr != nil {
			inv.logger.Warn().Err(derr).Msg("failed to disable sync after failed test export")
		}
		return fmt.Errorf("test sync to %s: %w", syncDir, err)
	}

	inv.out.Success("Sync is now Enabled!")
	inv.out.Field("Sync file", filepath.Join(syncDir, inv.app.archiveName))
	return nil
}

func (inv *invocation) version(ctx context.Context) error {
	info := inv.app.services.AppInfoService.GetAppInfo(ctx)

	inv.out.Printf("IPass v%s\n", strings.TrimPrefix(info.Build.BuildVersion(), "v"))
	inv.out.Println(info.Build.Explain())
	inv.out.Field("Build date", info.Build.BuildDate())
	inv.out.Field("Build commit", info.Build.BuildCommit())
	inv.out.Field("Scheme", info.Scheme)
	inv.out.Field("Vault", info.VaultDir)
	return nil
}

func (inv *invocation) browse(ctx context.Context) error {
	passphrase, err := inv.masterPassword()
	if err != nil {
		return err
	}
	return inv.app.browser.Browse(ctx, passphrase)
}

// requireEntry fails before any prompt when name is not stored.
func (inv *invocation) requireEntry(ctx context.Context, name string) error {
	ok, err := inv.app.services.VaultService.Exists(ctx, name)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %q", service.ErrNotFound, name)
	}
	return nil
}

// argOrSecret returns args[i] or reads the value twice without echo.
func (inv *invocation) argOrSecret(i int, prompt string) (string, error) {
	if len(inv.args) > i {
		return strings.TrimSpace(inv.args[i]), nil
	}

	first, err := inv.app.prompter.Secret(prompt)
	if err != nil {
		return "", err
	}
	second, err := inv.app.prompter.Secret("Repeat: ")
	if err != nil {
		return "", err
	}
	if first != second {
		return "", ErrPasswordsDoNotMatch
	}
	return first, nil
}

// location returns the directory argument, or the home directory after the
// user agreed to it.
func (inv *invocation) location() (string, error) {
	if len(inv.args) == 1 {
		return inv.args[0], nil
	}

	prompt := fmt.Sprintf("No location specified, defaulting to %s continue? [Y/n] ", inv.app.homeDir)
	if err := inv.confirm(prompt, true); err != nil {
		return "", err
	}
	return inv.app.homeDir, nil
}

// confirm returns [ErrAborted] unless the user agrees. -y agrees up front.
func (inv *invocation) confirm(prompt string, defaultYes bool) error {
	if inv.opts.yes {
		return nil
	}

	answer, err := inv.app.prompter.Line(prompt)
	if err != nil {
		return err
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "":
		if defaultYes {
			return nil
		}
	case "y", "yes":
		return nil
	}
	return ErrAborted
}

func (inv *invocation) masterPassword() (string, error) {
	if inv.passphrase != nil {
		return *inv.passphrase, nil
	}

	p, err := inv.app.prompter.Secret("Please enter the master password: ")
	if err != nil {
		return "", fmt.Errorf("read master password: %w", err)
	}
	inv.passphrase = &p
	return p, nil
}
