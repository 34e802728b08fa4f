// distanalysis compares the closed-form density of the Rayleigh, Gamma,
// Weibull and Exponential distributions with a histogram estimate from
// random samples, and writes the four comparisons as a 2x2 figure.
package main

import (
	"flag"
	"os"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/op/go-logging"
	"golang.org/x/exp/rand"

	"distanalysis/comparison"
	"distanalysis/render"
)

const progName = "distanalysis"

var log = logging.MustGetLogger(progName)

func startLogging(debug bool) {
	backend := logging.NewLogBackend(os.Stderr, progName+": ", 0)
	formatter := logging.MustStringFormatter("%{level:8s} %{module:-24s} | %{message}")
	leveled := logging.AddModuleLevel(logging.NewBackendFormatter(backend, formatter))
	leveled.SetLevel(logging.INFO, "")
	if debug {
		leveled.SetLevel(logging.DEBUG, "")
	}
	logging.SetBackend(leveled)
}

func main() {
	var out string
	var debug bool
	flag.StringVar(&out, "out", "distributions.png", "output figure (.png, .jpg or .eps)")
	flag.BoolVar(&debug, "debug", false, "debug logging")
	flag.Parse()
	startLogging(debug)

	src := rand.NewSource(uint64(time.Now().UnixNano()))
	renderer := render.File{Grid: render.DefaultGrid(), Path: out}

	bar := pb.StartNew(len(comparison.Setups))
	err := comparison.Run(renderer, src, func(p comparison.Panel) {
		bar.Increment()
	})
	bar.Finish()
	if err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
	log.Infof("wrote %s", out)
}
