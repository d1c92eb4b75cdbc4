package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/omarelmalki/image-database-manager/pkg/fs"
	"github.com/omarelmalki/image-database-manager/pkg/imgstore"
)

// shellREPL is an interactive command loop against one open store,
// grounded on the teacher's cmd/sloty REPL: liner for line editing and
// persisted history, a fixed command table, Ctrl-C/EOF as clean exit.
type shellREPL struct {
	store *imgstore.Store
	path  string
	fsys  fs.FS
	liner *liner.State
}

func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".imgstore_history")
}

func (r *shellREPL) run() error {
	r.liner = liner.NewLiner()
	defer r.liner.Close()

	r.liner.SetCtrlCAborts(true)
	r.liner.SetCompleter(r.completer)

	if f, err := r.fsys.OpenFile(historyFile(), os.O_RDONLY, 0); err == nil {
		r.liner.ReadHistory(f)
		f.Close()
	}

	fmt.Printf("imgstore shell - %s\n", r.path)
	fmt.Println("Type 'help' for available commands.")
	fmt.Println()

	for {
		line, err := r.liner.Prompt("imgstore> ")
		if err != nil {
			if err == liner.ErrPromptAborted || err == io.EOF {
				fmt.Println("\nBye!")
				break
			}
			return fmt.Errorf("reading input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		r.liner.AppendHistory(line)

		parts := strings.Fields(line)
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		switch cmd {
		case "exit", "quit", "q":
			fmt.Println("Bye!")
			r.saveHistory()
			return nil
		case "help", "?":
			r.printHelp()
		case "insert":
			r.cmdInsert(args)
		case "read":
			r.cmdRead(args)
		case "delete", "del":
			r.cmdDelete(args)
		case "list", "ls":
			r.cmdList(args)
		case "compact", "gc":
			r.cmdCompact()
		case "stats":
			r.cmdStats()
		default:
			fmt.Printf("Unknown command: %s (type 'help' for commands)\n", cmd)
		}
	}

	r.saveHistory()
	return nil
}

func (r *shellREPL) saveHistory() {
	if path := historyFile(); path != "" {
		if f, err := r.fsys.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644); err == nil {
			r.liner.WriteHistory(f)
			f.Close()
		}
	}
}

func (r *shellREPL) completer(line string) []string {
	commands := []string{"insert", "read", "delete", "list", "compact", "stats", "help", "exit"}
	var out []string
	for _, c := range commands {
		if strings.HasPrefix(c, line) {
			out = append(out, c)
		}
	}
	return out
}

func (r *shellREPL) printHelp() {
	fmt.Println("Commands:")
	fmt.Println("  insert <img-id> <jpeg-file>             insert an image")
	fmt.Println("  read <img-id> <resolution> <out-file>   read a variant to a file")
	fmt.Println("  delete <img-id>                         logically delete an image")
	fmt.Println("  list [json]                             print the store's contents")
	fmt.Println("  compact                                 reclaim deleted space")
	fmt.Println("  stats                                   print header fields")
	fmt.Println("  exit                                    leave the shell")
}

func (r *shellREPL) cmdInsert(args []string) {
	if len(args) != 2 {
		fmt.Println("usage: insert <img-id> <jpeg-file>")
		return
	}
	data, err := r.fsys.ReadFile(args[1])
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if err := r.store.Insert(data, args[0]); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("inserted %q\n", args[0])
}

func (r *shellREPL) cmdRead(args []string) {
	if len(args) != 3 {
		fmt.Println("usage: read <img-id> <resolution> <out-file>")
		return
	}
	res, err := imgstore.ParseResolution(args[1])
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	data, err := r.store.Read(args[0], res)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if err := r.fsys.WriteFile(args[2], data, 0o644); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("wrote %d bytes to %s\n", len(data), args[2])
}

func (r *shellREPL) cmdDelete(args []string) {
	if len(args) != 1 {
		fmt.Println("usage: delete <img-id>")
		return
	}
	if err := r.store.Delete(args[0]); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("deleted %q\n", args[0])
}

func (r *shellREPL) cmdList(args []string) {
	mode := imgstore.ListHuman
	if len(args) == 1 && args[0] == "json" {
		mode = imgstore.ListStructured
	}
	out, err := r.store.List(mode)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(out)
}

func (r *shellREPL) cmdCompact() {
	if err := r.store.Compact(); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("compacted")
}

func (r *shellREPL) cmdStats() {
	stats, err := r.store.Stats()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("version=%d num_valid=%d max_files=%d thumb=%dx%d small=%dx%d\n",
		stats.Version, stats.NumValid, stats.MaxFiles,
		stats.ThumbWidth, stats.ThumbHeight, stats.SmallWidth, stats.SmallHeight)
}
