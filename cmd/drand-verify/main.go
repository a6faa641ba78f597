// Command drand-verify checks a single beacon document against a network's
// chain-info document, both read from local files, and reports the result.
// It is a thin demonstrator of the verify package: it does no fetching, no
// caching, and no chain traversal.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/randa-mu/drand-verify/beacon"
	"github.com/randa-mu/drand-verify/chaininfo"
	"github.com/randa-mu/drand-verify/log"
	"github.com/randa-mu/drand-verify/verify"
)

var infoFlag = &cli.StringFlag{
	Name:     "info",
	Usage:    "path to a chain-info JSON document",
	Required: true,
}

var beaconFlag = &cli.StringFlag{
	Name:     "beacon",
	Usage:    "path to a beacon JSON document",
	Required: true,
}

func main() {
	app := &cli.App{
		Name:   "drand-verify",
		Usage:  "verify a drand-style randomness beacon against a network's chain info",
		Flags:  []cli.Flag{infoFlag, beaconFlag},
		Action: verifyAction,
	}

	if err := app.Run(os.Args); err != nil {
		log.DefaultLogger().Errorw("drand-verify: failed", "err", err)
		os.Exit(1)
	}
}

func verifyAction(c *cli.Context) error {
	l := log.DefaultLogger()

	infoBytes, err := os.ReadFile(c.String(infoFlag.Name))
	if err != nil {
		return fmt.Errorf("reading chain info: %w", err)
	}
	info, err := chaininfo.Decode(infoBytes)
	if err != nil {
		return fmt.Errorf("decoding chain info: %w", err)
	}

	beaconBytes, err := os.ReadFile(c.String(beaconFlag.Name))
	if err != nil {
		return fmt.Errorf("reading beacon: %w", err)
	}
	b, err := beacon.Decode(beaconBytes)
	if err != nil {
		return fmt.Errorf("decoding beacon: %w", err)
	}

	id, err := info.Scheme()
	if err != nil {
		return fmt.Errorf("resolving scheme: %w", err)
	}

	if err := verify.VerifyBeacon(id, info.PublicKey, b); err != nil {
		l.Errorw("beacon rejected", "round", b.RoundNumber, "scheme", id.Name(), "reason", err)
		return err
	}

	l.Infow("beacon verified", "round", b.RoundNumber, "scheme", id.Name())
	return nil
}
