// Command antihash searches for an adversarial hash-collision pair against
// one or more polynomial rolling hash (modulus, base) pairs, doubling the
// candidate string length until a collision is found or a length ceiling
// is reached. It is a terminal-driven search harness, not the core library
// (see package antihash); argument parsing and result rendering live here
// precisely because spec.md §1 scopes them out of the core.
package main

import (
	"context"
	"fmt"
	"log"
	"math/big"
	"os"
	"strings"

	"github.com/urfave/cli"

	"github.com/gonum-community/antihash/antihash"
	"github.com/gonum-community/antihash/bignum"
)

// maxLength bounds the length-doubling loop so a misconfigured hash family
// that never admits a collision does not search forever.
const maxLength = 1 << 16

// VERSION is populated via build flags when packaging official binaries.
var VERSION = "SELFBUILD"

func main() {
	if VERSION == "SELFBUILD" {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}

	app := cli.NewApp()
	app.Name = "antihash"
	app.Usage = "search for an adversarial hash-collision pair"
	app.Version = VERSION
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "modulo",
			Usage: "comma-separated list of moduli, one per (modulus, base) pair",
		},
		cli.StringFlag{
			Name:  "base",
			Usage: "comma-separated list of bases, aligned with --modulo",
		},
		cli.StringFlag{
			Name:  "lambda",
			Value: "100000",
			Usage: "hash-image column scale factor",
		},
		cli.StringFlag{
			Name:  "delta",
			Value: "0.99",
			Usage: "Lovász condition parameter (1/4 < delta < 1)",
		},
		cli.StringFlag{
			Name:  "eta",
			Value: "0.51",
			Usage: "size-reduction parameter (eta > 1/2)",
		},
		cli.IntFlag{
			Name:  "precision",
			Value: 10,
			Usage: "significant decimal digits carried by every Decimal computation",
		},
		cli.IntFlag{
			Name:  "sigma",
			Value: 26,
			Usage: "alphabet size, range [2, 26]",
		},
		cli.Float64Flag{
			Name:  "timeout",
			Value: 30,
			Usage: "per-length wall-clock budget in seconds",
		},
		cli.IntFlag{
			Name:  "length",
			Value: 1,
			Usage: "starting string length; doubled after each failed attempt",
		},
		cli.BoolFlag{
			Name:  "v",
			Usage: "log basis dimensions and per-length outcomes",
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	modulo, err := parseIntegerList(c.String("modulo"))
	if err != nil {
		return fmt.Errorf("--modulo: %w", err)
	}
	base, err := parseIntegerList(c.String("base"))
	if err != nil {
		return fmt.Errorf("--base: %w", err)
	}
	lambda, err := parseInteger(c.String("lambda"))
	if err != nil {
		return fmt.Errorf("--lambda: %w", err)
	}
	delta, err := bignum.ParseDecimal(c.String("delta"))
	if err != nil {
		return fmt.Errorf("--delta: %w", err)
	}
	eta, err := bignum.ParseDecimal(c.String("eta"))
	if err != nil {
		return fmt.Errorf("--eta: %w", err)
	}

	base1 := antihash.Parameters{
		Length:    c.Int("length"),
		Modulo:    modulo,
		Base:      base,
		Lambda:    lambda,
		Delta:     delta,
		Eta:       eta,
		Precision: c.Int("precision"),
		Sigma:     c.Int("sigma"),
		Timeout:   c.Float64("timeout"),
	}
	if err := base1.Validate(); err != nil {
		return err
	}

	var logger *log.Logger
	if c.Bool("v") {
		logger = log.New(os.Stderr, "", log.LstdFlags)
	}

	ctx := context.Background()
	length := c.Int("length")
	for length <= maxLength {
		p := base1
		p.Length = length

		result := antihash.AntiHash(ctx, p, antihash.WithLogger(logger))
		if logger != nil {
			logger.Printf("length=%d: %v", length, result)
		}

		switch {
		case result.OK():
			fmt.Printf("length=%d a=%q b=%q elapsed=%.3fs\n", length, result.A, result.B, result.Elapsed)
			return nil
		case result.Status == antihash.StatusUnknown:
			return fmt.Errorf("length=%d: internal inconsistency: candidate row failed hash recomputation", length)
		}
		length *= 2
	}
	return fmt.Errorf("no collision found up to length %d", maxLength)
}

func parseInteger(s string) (bignum.Integer, error) {
	s = strings.TrimSpace(s)
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return bignum.Integer{}, fmt.Errorf("invalid integer literal %q", s)
	}
	return bignum.NewIntegerFromBigInt(v), nil
}

func parseIntegerList(s string) ([]bignum.Integer, error) {
	fields := strings.Split(s, ",")
	out := make([]bignum.Integer, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := parseInteger(f)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty list")
	}
	return out, nil
}
