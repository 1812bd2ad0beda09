package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/slub/nbnurn/nbn"

	"github.com/urfave/cli/v2"
)

var cmdCheck = &cli.Command{
	Name:      "check",
	Usage:     "validates NBN-URN syntax",
	ArgsUsage: `<urn>`,
	Action:    runCheck,
}

var cmdInspect = &cli.Command{
	Name:      "inspect",
	Usage:     "parses an NBN-URN and prints its parts",
	ArgsUsage: `<urn>`,
	Action:    runInspect,
}

var cmdBuild = &cli.Command{
	Name:  "build",
	Usage: "constructs an NBN-URN from its parts",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "country",
			Usage:    "country code (eg, 'de')",
			Required: true,
			EnvVars:  []string{"NBNURN_COUNTRY"},
		},
		&cli.StringFlag{
			Name:    "prefix",
			Usage:   "optional subnamespace prefix (eg, 'bsz' or 'uu:diva')",
			EnvVars: []string{"NBNURN_PREFIX"},
		},
		&cli.StringFlag{
			Name:     "nbn",
			Usage:    "national book number",
			Required: true,
			EnvVars:  []string{"NBNURN_NBN"},
		},
	},
	Action: runBuild,
}

var cmdNormalize = &cli.Command{
	Name:      "normalize",
	Usage:     "prints the canonical form of an NBN-URN",
	ArgsUsage: `<urn>`,
	Action:    runNormalize,
}

var cmdCheckFile = &cli.Command{
	Name:      "check-file",
	Usage:     "validates one NBN-URN per line of a file (or stdin)",
	ArgsUsage: `<path|->`,
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "json",
			Usage: "output valid lines as JSON objects",
		},
	},
	Action: runCheckFile,
}

// JSON output for a single NBN-URN
type nbnOutput struct {
	URN                string `json:"urn"`
	CountryCode        string `json:"country_code"`
	SubnamespacePrefix string `json:"subnamespace_prefix,omitempty"`
	NationalBookNumber string `json:"national_book_number"`
	Hash               string `json:"hash"`
}

func hashString(n nbn.NBNURN) string {
	return fmt.Sprintf("%016x", n.Hash())
}

func parseArg(cctx *cli.Context) (nbn.NBNURN, error) {
	s := cctx.Args().First()
	if s == "" {
		return nbn.NBNURN{}, fmt.Errorf("need to provide identifier as argument")
	}
	return nbn.Parse(s)
}

func runCheck(cctx *cli.Context) error {
	_, err := parseArg(cctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(cctx.App.Writer, "valid")
	return nil
}

func runInspect(cctx *cli.Context) error {
	n, err := parseArg(cctx)
	if err != nil {
		return err
	}
	prefix := n.SubnamespacePrefix()
	if !n.HasSubnamespacePrefix() {
		prefix = "(none)"
	}
	w := cctx.App.Writer
	fmt.Fprintf(w, "URN: %s\n", n)
	fmt.Fprintf(w, "Country Code: %s\n", n.CountryCode())
	fmt.Fprintf(w, "Subnamespace Prefix: %s\n", prefix)
	fmt.Fprintf(w, "National Book Number: %s\n", n.NationalBookNumber())
	fmt.Fprintf(w, "Hash: %s\n", hashString(n))
	return nil
}

func runBuild(cctx *cli.Context) error {
	n, err := nbn.New(cctx.String("country"), cctx.String("prefix"), cctx.String("nbn"))
	if err != nil {
		return err
	}
	fmt.Fprintln(cctx.App.Writer, n.String())
	return nil
}

func runNormalize(cctx *cli.Context) error {
	n, err := parseArg(cctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(cctx.App.Writer, n.String())
	return nil
}

const stdIOPath = "-"

func runCheckFile(cctx *cli.Context) error {
	path := cctx.Args().First()
	if path == "" {
		return fmt.Errorf("need to provide file path as argument (or '-' for stdin)")
	}
	var r io.Reader
	if path == stdIOPath {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	w := cctx.App.Writer
	enc := json.NewEncoder(w)
	total, invalid := 0, 0
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		total++
		n, err := nbn.Parse(line)
		if err != nil {
			invalid++
			slog.Warn("invalid NBN-URN", "line", lineNum, "text", line, "err", err)
			continue
		}
		slog.Debug("valid NBN-URN", "line", lineNum, "urn", n.String())
		if cctx.Bool("json") {
			out := nbnOutput{
				URN:                n.String(),
				CountryCode:        n.CountryCode(),
				SubnamespacePrefix: n.SubnamespacePrefix(),
				NationalBookNumber: n.NationalBookNumber(),
				Hash:               hashString(n),
			}
			if err := enc.Encode(out); err != nil {
				return err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	if !cctx.Bool("json") {
		fmt.Fprintf(w, "checked %d identifiers, %d invalid\n", total, invalid)
	}
	if invalid > 0 {
		return fmt.Errorf("%d of %d identifiers failed validation", invalid, total)
	}
	return nil
}
