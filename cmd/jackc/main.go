// Command jackc compiles Jack source files to VM bytecode.
package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/libklein/nand2tetris/jackcompiler/internal/compiler"
	"github.com/libklein/nand2tetris/jackcompiler/internal/config"
	"github.com/libklein/nand2tetris/jackcompiler/internal/diag"
	"github.com/libklein/nand2tetris/jackcompiler/internal/lexer"
	"github.com/libklein/nand2tetris/jackcompiler/internal/token"
	"github.com/libklein/nand2tetris/jackcompiler/internal/xmldump"
)

func main() {
	var (
		configPath string
		outDir     string
		verboseN   int
		builtins   []string
		dumpTokens bool
	)

	cmd := &cobra.Command{
		Use:   "jackc PATH",
		Short: "Compile Jack source to VM bytecode",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			target := args[0]

			cfgPath := configPath
			if cfgPath == "" {
				cfgPath = config.Beside(target)
			}
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return fmt.Errorf("loading %s: %w", cfgPath, err)
			}

			verbose := verboseN > 0 || cfg.Verbose
			log, err := diag.New(verbose)
			if err != nil {
				return fmt.Errorf("initializing logger: %w", err)
			}

			resolvedOutDir := cfg.OutputDir
			if c.Flags().Changed("out") {
				resolvedOutDir = outDir
			}

			allBuiltins := append(append([]string{}, cfg.BuiltinClasses...), builtins...)

			files, err := sourceFiles(target)
			if err != nil {
				return err
			}

			failed := 0
			for _, src := range files {
				if err := compileFile(src, resolvedOutDir, dumpTokens, log, allBuiltins); err != nil {
					log.Error(err, "compilation failed", "file", src)
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d file(s) failed to compile", failed, len(files))
			}
			return nil
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to .jackc.yaml (default: look beside PATH)")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (default: alongside each source file)")
	cmd.Flags().CountVarP(&verboseN, "verbose", "v", "raise log verbosity")
	cmd.Flags().StringArrayVar(&builtins, "builtin", nil, "additional built-in class name (repeatable)")
	cmd.Flags().BoolVar(&dumpTokens, "dump-tokens", false, "emit a flat XML token listing alongside the .vm file")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// sourceFiles resolves target to the list of .jack files to compile: the
// file itself, or every immediate (non-recursive) *.jack child of a
// directory, collected up front so batch mode attempts every file
// before reporting a combined failure.
func sourceFiles(target string) ([]string, error) {
	info, err := os.Stat(target)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", target, err)
	}
	if !info.IsDir() {
		return []string{target}, nil
	}

	entries, err := os.ReadDir(target)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", target, err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".jack") {
			continue
		}
		files = append(files, filepath.Join(target, e.Name()))
	}
	sort.Strings(files)
	if len(files) == 0 {
		return nil, fmt.Errorf("%s: no .jack files found", target)
	}
	return files, nil
}

func compileFile(src, outDir string, dumpTokens bool, log logr.Logger, builtins []string) error {
	in, err := os.Open(src)
	if err != nil {
		return &compiler.IOError{Path: src, Err: err}
	}
	tokens, err := lexer.All(lexer.New(in))
	in.Close()
	if err != nil {
		return err
	}

	dir := outDir
	if dir == "" {
		dir = filepath.Dir(src)
	}
	base := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))

	if dumpTokens {
		dumpPath := filepath.Join(dir, base+".tokens.xml")
		if err := writeTokenDump(dumpPath, tokens); err != nil {
			return err
		}
	}

	opts := []compiler.Option{compiler.WithLogger(log)}
	if len(builtins) > 0 {
		opts = append(opts, compiler.WithBuiltins(builtins...))
	}

	var vmText bytes.Buffer
	if err := compiler.CompileTokens(tokens, &vmText, opts...); err != nil {
		return err
	}

	outPath := filepath.Join(dir, base+".vm")
	out, err := os.Create(outPath)
	if err != nil {
		return &compiler.IOError{Path: outPath, Err: err}
	}
	defer out.Close()

	if _, err := vmText.WriteTo(out); err != nil {
		return &compiler.IOError{Path: outPath, Err: err}
	}

	log.Info("compiled class", "file", src, "output", outPath)
	return nil
}

func writeTokenDump(dumpPath string, tokens []token.Token) error {
	out, err := os.Create(dumpPath)
	if err != nil {
		return &compiler.IOError{Path: dumpPath, Err: err}
	}
	defer out.Close()

	return xmldump.Write(out, tokens)
}
