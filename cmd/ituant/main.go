// Command ituant generates antenna pattern files from a model name and a
// parameter set given in a config file.
//
// A config.yaml next to the binary (or under -indir) looks like:
//
//	model: ITUF1245
//	params:
//	  oper_freq_mhz: 23000
//	  calc_opt: Rec. 2
//	  max_gain_dbi: 42
//	format: msi
//	output: pattern
package main

import (
	"flag"
	"io/ioutil"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/wiless/ituantenna/antenna"
	"github.com/wiless/ituantenna/export"
	"github.com/wiless/ituantenna/plot"
)

var (
	indir     string
	outdir    string
	modelName string
	format    string
	output    string
	plotfile  bool
)

func init() {
	flag.StringVar(&indir, "indir", ".", "Directory where the config file is read")
	flag.StringVar(&outdir, "outdir", ".", "Directory where the output files are generated")
	flag.StringVar(&modelName, "model", "", "Antenna model name, overrides the config")
	flag.StringVar(&format, "format", "", "Output format csv|json|yaml|msi, overrides the config")
	flag.BoolVar(&plotfile, "plot", false, "Also write an Octave polar plot script")
	help := flag.Bool("help", false, "prints this help")
	verbose := flag.Bool("v", true, "Print logs verbose mode")
	flag.Parse()

	if *help {
		flag.PrintDefaults()
		os.Exit(0)
		return
	}
	if !*verbose {
		log.SetOutput(ioutil.Discard)
	}
	readAppConfig()
}

func readAppConfig() {
	viper.AddConfigPath(indir)
	viper.SetConfigName("config")
	if err := viper.ReadInConfig(); err != nil {
		log.Print("ReadInConfig ", err)
	}
	viper.SetDefault("model", "ITUF699")
	viper.SetDefault("format", "msi")
	viper.SetDefault("output", "pattern")

	if modelName == "" {
		modelName = viper.GetString("model")
	}
	if format == "" {
		format = viper.GetString("format")
	}
	output = viper.GetString("output")
}

func main() {
	log.Infof("Generating %s pattern, supported models: %v", modelName, antenna.Names())

	model, err := antenna.New(modelName)
	if err != nil {
		log.Fatal(err)
	}

	params := antenna.Fields(viper.GetStringMap("params"))
	if err := model.SetParams(params); err != nil {
		log.Fatalf("%s: %v", modelName, err)
	}
	log.Infof("%s configured with %v", model.Name(), model.Params())

	spec, err := model.Specs()
	if err != nil {
		log.Fatal(err)
	}

	exp, err := export.ForFormat(format)
	if err != nil {
		log.Fatal(err)
	}
	fname := outpath(output + "." + extension(format))
	if err := exp.Export(spec, fname); err != nil {
		log.Fatalf("export %s: %v", fname, err)
	}
	log.Infof("Wrote %s", fname)

	if plotfile {
		if err := plot.Patterns(spec, outpath(output)); err != nil {
			log.Fatalf("plot: %v", err)
		}
		log.Infof("Wrote %s.m", outpath(output))
	}
}

func outpath(name string) string {
	return strings.TrimRight(outdir, "/") + "/" + name
}

func extension(format string) string {
	if format == "msi" {
		return "msi"
	}
	return format
}
