// Command imgstore is a CLI front-end over pkg/imgstore: a single-file,
// content-addressed JPEG store. It is not part of the store engine
// itself — here only to exercise it end to end, the way sloty exercises
// slotcache.
//
// Usage:
//
//	imgstore create [--config <file>] [flags] <store-file>
//	imgstore insert <store-file> <img-id> <jpeg-file>
//	imgstore read <store-file> <img-id> <resolution> <out-file>
//	imgstore delete <store-file> <img-id>
//	imgstore list [--json] <store-file>
//	imgstore compact <store-file>
//	imgstore shell <store-file>
package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/omarelmalki/image-database-manager/internal/codec"
	"github.com/omarelmalki/image-database-manager/internal/hashsum"
	"github.com/omarelmalki/image-database-manager/pkg/fs"
	"github.com/omarelmalki/image-database-manager/pkg/imgstore"
)

// disk is the one [fs.FS] the CLI runs against. Every whole-file read or
// write the CLI performs around the store engine — loading a JPEG to
// insert, writing a read-out variant, loading a config file, the shell's
// history file — goes through it instead of calling the os package
// directly, the same way pkg/imgstore itself never touches os directly.
var disk fs.FS = fs.NewReal()

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		printTopHelp()
		return 1
	}

	name, rest := args[0], args[1:]
	cmd, ok := commands[name]
	if !ok {
		if name == "help" || name == "--help" || name == "-h" {
			printTopHelp()
			return 0
		}
		fmt.Fprintf(os.Stderr, "imgstore: unknown command %q\n", name)
		printTopHelp()
		return 1
	}

	return cmd.run(rest)
}

func printTopHelp() {
	fmt.Fprintln(os.Stderr, "Usage: imgstore <command> [arguments]")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Commands:")
	for _, name := range commandOrder {
		fmt.Fprintln(os.Stderr, commands[name].Short)
	}
}

var commandOrder = []string{"create", "insert", "read", "delete", "list", "compact", "shell"}

var commands = map[string]*command{
	"create":  createCommand(),
	"insert":  insertCommand(),
	"read":    readCommand(),
	"delete":  deleteCommand(),
	"list":    listCommand(),
	"compact": compactCommand(),
	"shell":   shellCommand(),
}

func defaultCodec() imgstore.ImageCodec { return codec.JPEG{} }
func defaultHasher() imgstore.Hasher    { return hashsum.SHA256{} }

func createCommand() *command {
	fs := flag.NewFlagSet("create", flag.ContinueOnError)
	configPath := fs.String("config", "", "HuJSON config file (overrides flags below)")
	maxFiles := fs.Uint32("max-files", imgstore.DefaultOptions().MaxFiles, "slot capacity")
	thumbW := fs.Uint16("thumb-w", imgstore.DefaultOptions().ThumbWidth, "thumbnail bounding width")
	thumbH := fs.Uint16("thumb-h", imgstore.DefaultOptions().ThumbHeight, "thumbnail bounding height")
	smallW := fs.Uint16("small-w", imgstore.DefaultOptions().SmallWidth, "small bounding width")
	smallH := fs.Uint16("small-h", imgstore.DefaultOptions().SmallHeight, "small bounding height")

	return &command{
		Flags: fs,
		Usage: "create [--config <file>] [flags] <store-file>",
		Short: "  create     Create a new store file",
		Exec: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one store-file argument")
			}

			opts := imgstore.Options{
				MaxFiles:    *maxFiles,
				ThumbWidth:  *thumbW,
				ThumbHeight: *thumbH,
				SmallWidth:  *smallW,
				SmallHeight: *smallH,
			}
			if *configPath != "" {
				fileOpts, err := loadCreateConfig(disk, *configPath)
				if err != nil {
					return err
				}
				opts = fileOpts
			}

			store, err := imgstore.Create(args[0], opts, defaultCodec(), defaultHasher())
			if err != nil {
				return err
			}
			return store.Close()
		},
	}
}

func insertCommand() *command {
	fs := flag.NewFlagSet("insert", flag.ContinueOnError)
	return &command{
		Flags: fs,
		Usage: "insert <store-file> <img-id> <jpeg-file>",
		Short: "  insert     Insert a JPEG image under an id",
		Exec: func(args []string) error {
			if len(args) != 3 {
				return fmt.Errorf("expected <store-file> <img-id> <jpeg-file>")
			}
			data, err := disk.ReadFile(args[2])
			if err != nil {
				return fmt.Errorf("reading %q: %w", args[2], err)
			}

			store, err := imgstore.Open(args[0], imgstore.ReadWrite, defaultCodec(), defaultHasher())
			if err != nil {
				return err
			}
			defer store.Close()

			return store.Insert(data, args[1])
		},
	}
}

func readCommand() *command {
	fs := flag.NewFlagSet("read", flag.ContinueOnError)
	return &command{
		Flags: fs,
		Usage: "read <store-file> <img-id> <resolution> <out-file>",
		Short: "  read       Read an image variant to a file",
		Exec: func(args []string) error {
			if len(args) != 4 {
				return fmt.Errorf("expected <store-file> <img-id> <resolution> <out-file>")
			}
			res, err := imgstore.ParseResolution(args[2])
			if err != nil {
				return err
			}

			// ReadWrite: a thumb/small variant read for the first time is
			// appended to the store file.
			store, err := imgstore.Open(args[0], imgstore.ReadWrite, defaultCodec(), defaultHasher())
			if err != nil {
				return err
			}
			defer store.Close()

			data, err := store.Read(args[1], res)
			if err != nil {
				return err
			}
			return disk.WriteFile(args[3], data, 0o644)
		},
	}
}

func deleteCommand() *command {
	fs := flag.NewFlagSet("delete", flag.ContinueOnError)
	return &command{
		Flags: fs,
		Usage: "delete <store-file> <img-id>",
		Short: "  delete     Logically delete an image",
		Exec: func(args []string) error {
			if len(args) != 2 {
				return fmt.Errorf("expected <store-file> <img-id>")
			}
			store, err := imgstore.Open(args[0], imgstore.ReadWrite, defaultCodec(), defaultHasher())
			if err != nil {
				return err
			}
			defer store.Close()

			return store.Delete(args[1])
		},
	}
}

func listCommand() *command {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	asJSON := fs.Bool("json", false, "print {\"Images\": [...]} instead of the human summary")
	return &command{
		Flags: fs,
		Usage: "list [--json] <store-file>",
		Short: "  list       Print a store's contents",
		Exec: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected <store-file>")
			}
			store, err := imgstore.Open(args[0], imgstore.ReadOnly, defaultCodec(), defaultHasher())
			if err != nil {
				return err
			}
			defer store.Close()

			mode := imgstore.ListHuman
			if *asJSON {
				mode = imgstore.ListStructured
			}
			out, err := store.List(mode)
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		},
	}
}

func compactCommand() *command {
	fs := flag.NewFlagSet("compact", flag.ContinueOnError)
	return &command{
		Flags: fs,
		Usage: "compact <store-file>",
		Short: "  compact    Reclaim space held by deleted images",
		Exec: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected <store-file>")
			}
			store, err := imgstore.Open(args[0], imgstore.ReadWrite, defaultCodec(), defaultHasher())
			if err != nil {
				return err
			}
			defer store.Close()

			return store.Compact()
		},
	}
}

func shellCommand() *command {
	fs := flag.NewFlagSet("shell", flag.ContinueOnError)
	return &command{
		Flags: fs,
		Usage: "shell <store-file>",
		Short: "  shell      Interactive REPL against a store",
		Exec: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected <store-file>")
			}
			store, err := imgstore.Open(args[0], imgstore.ReadWrite, defaultCodec(), defaultHasher())
			if err != nil {
				return err
			}
			defer store.Close()

			repl := &shellREPL{store: store, path: args[0], fsys: disk}
			return repl.run()
		},
	}
}
