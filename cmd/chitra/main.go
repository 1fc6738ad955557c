package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mahesh-hegde/chitra/app/config"
	"github.com/mahesh-hegde/chitra/app/dataset"
	"github.com/mahesh-hegde/chitra/app/figure"
	"github.com/mahesh-hegde/chitra/app/load"
	"github.com/mahesh-hegde/chitra/app/server"
	"github.com/mahesh-hegde/chitra/app/session"
	"github.com/mahesh-hegde/chitra/app/term"
	"github.com/spf13/pflag"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "serve":
		runServe()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: chitra <command> [options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  serve        Load a tabular file and serve an interactive 3D scatter plot")
}

func runServe() {
	flags := pflag.NewFlagSet("serve", pflag.ExitOnError)
	var dataFile, sheet, table, sep, confPath string
	var address string
	var port, rateLimit, gzipLevel int
	var colX, colY, colZ, colColor string
	var noBrowser, noPrompt bool

	flags.StringVarP(&dataFile, "data", "d", "", "Data file to load (.csv, .tsv, .xlsx, .db, .sqlite); prompts if omitted")
	flags.StringVar(&sheet, "sheet", "", "Workbook sheet to load (xlsx only)")
	flags.StringVar(&table, "table", "", "Table to load (SQLite only)")
	flags.StringVar(&sep, "sep", "", "Field separator for delimited files")
	flags.StringVarP(&confPath, "config", "c", "", "Path to config.json with source and plot defaults")
	flags.StringVarP(&address, "address", "a", "localhost", "Server address to bind")
	flags.IntVarP(&port, "port", "p", 8050, "Server port to bind")
	flags.IntVar(&rateLimit, "rate-limit", 0, "Requests per second per client, 0 disables limiting")
	flags.IntVar(&gzipLevel, "gzip", 0, "Gzip compression level, 0 disables compression")
	flags.StringVar(&colX, "x", "", "Initial X-Axis column")
	flags.StringVar(&colY, "y", "", "Initial Y-Axis column")
	flags.StringVar(&colZ, "z", "", "Initial Z-Axis column")
	flags.StringVar(&colColor, "color", "", "Initial Color-Coding column")
	flags.BoolVar(&noBrowser, "no-browser", false, "Do not open the browser after starting")
	flags.BoolVar(&noPrompt, "no-prompt", false, "Never prompt; fail instead of asking")

	flags.Parse(os.Args[2:])

	conf := config.Default()
	if confPath != "" {
		loaded, err := config.Load(confPath)
		if err != nil {
			slog.Error("error loading config", "path", confPath, "err", err)
			os.Exit(1)
		}
		conf = loaded
	}
	overlayFlags(conf, dataFile, sheet, table, sep, colX, colY, colZ, colColor)

	prompter := term.NewPrompter(os.Stdin, os.Stdout)

	ds, err := loadDataset(conf, prompter, noPrompt)
	if err != nil {
		slog.Error("error loading dataset", "err", err)
		os.Exit(1)
	}
	fmt.Printf("Dataset loaded with following dimensions: Rows: %d, Columns: %d\n",
		ds.Rows(), len(ds.Columns()))

	decisions := dataset.OrdinalDecisions{}
	if !noPrompt {
		decisions, err = prompter.OrdinalDecisions(ds)
		if err != nil {
			slog.Error("error collecting ordinal decisions", "err", err)
			os.Exit(1)
		}
	}
	dataset.ApplyOrdinalDecisions(ds, decisions)

	sel, err := initialSelection(ds, conf, prompter, noPrompt)
	if err != nil {
		slog.Error("error choosing columns", "err", err)
		os.Exit(1)
	}

	sess, err := session.New(ds, sel, conf.Plot)
	if err != nil {
		slog.Error("error starting session", "err", err)
		os.Exit(1)
	}

	serverConf := config.ServerRuntimeConfig{
		Addr:        address,
		Port:        port,
		RateLimit:   rateLimit,
		GzipLevel:   gzipLevel,
		OpenBrowser: !noBrowser,
	}
	fmt.Printf("\nchitra running at http://%s:%d\n", address, port)
	if err := server.StartServer(server.NewPlotController(sess), serverConf); err != nil {
		slog.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func overlayFlags(conf *config.ChitraConfig, dataFile, sheet, table, sep, x, y, z, color string) {
	if dataFile != "" {
		conf.Source.File = dataFile
	}
	if sheet != "" {
		conf.Source.Sheet = sheet
	}
	if table != "" {
		conf.Source.Table = table
	}
	if sep != "" {
		conf.Source.CSVSep = sep
	}
	if x != "" {
		conf.Source.ColumnX = x
	}
	if y != "" {
		conf.Source.ColumnY = y
	}
	if z != "" {
		conf.Source.ColumnZ = z
	}
	if color != "" {
		conf.Source.ColorCoding = color
	}
}

func loadDataset(conf *config.ChitraConfig, prompter *term.Prompter, noPrompt bool) (*dataset.Dataset, error) {
	path := conf.Source.File
	if path == "" {
		if noPrompt {
			return nil, fmt.Errorf("--data is required with --no-prompt")
		}
		files, err := load.Discover(".")
		if err != nil {
			return nil, err
		}
		path, err = prompter.ChooseFrom("file", files)
		if err != nil {
			return nil, err
		}
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return load.ReadCSV(path, separatorRune(conf.Source.CSVSep))
	case ".tsv":
		return load.ReadCSV(path, '\t')
	case ".xlsx":
		sheet := conf.Source.Sheet
		if sheet == "" && !noPrompt {
			sheets, err := load.WorkbookSheets(path)
			if err != nil {
				return nil, err
			}
			if sheet, err = prompter.ChooseFrom("sheet", sheets); err != nil {
				return nil, err
			}
		}
		return load.ReadWorkbook(path, sheet)
	case ".db", ".sqlite":
		table := conf.Source.Table
		if table == "" {
			tables, err := load.SQLiteTables(path)
			if err != nil {
				return nil, err
			}
			if noPrompt && len(tables) == 1 {
				table = tables[0]
			} else if noPrompt {
				return nil, fmt.Errorf("--table is required for %q with --no-prompt", path)
			} else if table, err = prompter.ChooseFrom("table", tables); err != nil {
				return nil, err
			}
		}
		return load.ReadSQLite(path, table)
	default:
		return nil, fmt.Errorf("unsupported file format %q, expected .csv, .tsv, .xlsx, .db or .sqlite", path)
	}
}

func separatorRune(sep string) rune {
	if sep == "" {
		return ','
	}
	return []rune(sep)[0]
}

func initialSelection(ds *dataset.Dataset, conf *config.ChitraConfig, prompter *term.Prompter, noPrompt bool) (figure.Selection, error) {
	sel := figure.Selection{
		X:     conf.Source.ColumnX,
		Y:     conf.Source.ColumnY,
		Z:     conf.Source.ColumnZ,
		Color: conf.Source.ColorCoding,
	}
	complete := sel.X != "" && sel.Y != "" && sel.Z != "" && sel.Color != ""
	valid := ds.HasColumn(sel.X) && ds.HasColumn(sel.Y) && ds.HasColumn(sel.Z) && ds.HasColumn(sel.Color)
	if complete && valid {
		return sel, nil
	}
	if noPrompt {
		return sel, fmt.Errorf("initial columns missing or unknown; pass valid --x, --y, --z and --color")
	}
	return prompter.ChooseSelection(ds.Names())
}
