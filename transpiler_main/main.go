package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/tarstars/boost_transpiler/btl"
)

func decodeConfig(srcConfig string, out interface{}) {
	file, err := os.Open(srcConfig)
	btl.HandleError(err)
	defer func() { btl.HandleError(file.Close()) }()

	decoder := json.NewDecoder(file)
	btl.HandleError(decoder.Decode(out))
}

type ConvertConfig struct {
	ModelFileName        string `json:"filename_model_dump"`
	FeatureNamesFileName string `json:"filename_feature_names"`
	Language             string `json:"language"`
	ConfigDir            string `json:"config_dir"`
	TemplateDir          string `json:"template_dir"`
	TreesNumber          int    `json:"trees_number"`
	ThreadsNum           int    `json:"threads_num"`
	OutputFileName       string `json:"filename_output"`
}

func convert(srcConfig string) {
	var convertConfig ConvertConfig
	decodeConfig(srcConfig, &convertConfig)

	profile, err := btl.LoadProfile(convertConfig.Language, convertConfig.ConfigDir)
	btl.HandleError(err)

	templates, err := btl.LoadTemplates(convertConfig.Language, convertConfig.TemplateDir, profile.Dialect)
	btl.HandleError(err)

	trees, err := btl.LoadEnsemble(convertConfig.ModelFileName)
	btl.HandleError(err)

	featureNames, err := btl.LoadFeatureNames(convertConfig.FeatureNamesFileName)
	btl.HandleError(err)

	log.Printf("convert %d trees of %s to %s\n", len(trees), convertConfig.ModelFileName, convertConfig.Language)

	code, artifacts, err := btl.Assemble(btl.AssembleParams{
		Trees:        trees,
		FeatureNames: featureNames,
		Profile:      profile,
		Templates:    templates,
		MaxTrees:     convertConfig.TreesNumber,
		ThreadsNum:   convertConfig.ThreadsNum,
	})
	btl.HandleError(err)

	btl.HandleError(btl.SaveCode(code, artifacts, convertConfig.OutputFileName, profile))
}

type TestVectorConfig struct {
	FeaturesFileName string `json:"filename_features"`
	RowIndex         int    `json:"row_index"`
	Language         string `json:"language"`
	ConfigDir        string `json:"config_dir"`
	OutputFileName   string `json:"filename_output"`
}

func testVector(srcConfig string) {
	var vectorConfig TestVectorConfig
	decodeConfig(srcConfig, &vectorConfig)

	profile, err := btl.LoadProfile(vectorConfig.Language, vectorConfig.ConfigDir)
	btl.HandleError(err)

	features, err := btl.ReadNpy(vectorConfig.FeaturesFileName)
	btl.HandleError(err)

	encoded, err := btl.EncodeRow(features, vectorConfig.RowIndex, profile)
	btl.HandleError(err)

	dst, err := os.Create(vectorConfig.OutputFileName)
	btl.HandleError(err)
	defer func() { btl.HandleError(dst.Close()) }()

	_, err = dst.WriteString(encoded)
	btl.HandleError(err)
}

type EvaluateConfig struct {
	ModelFileName      string `json:"filename_model_dump"`
	FeaturesFileName   string `json:"filename_features"`
	Language           string `json:"language"`
	ConfigDir          string `json:"config_dir"`
	TreesNumber        int    `json:"trees_number"`
	PredictionFileName string `json:"filename_prediction"`
}

func evaluate(srcConfig string) {
	var evaluateConfig EvaluateConfig
	decodeConfig(srcConfig, &evaluateConfig)

	profile, err := btl.LoadProfile(evaluateConfig.Language, evaluateConfig.ConfigDir)
	btl.HandleError(err)

	trees, err := btl.LoadEnsemble(evaluateConfig.ModelFileName)
	btl.HandleError(err)

	features, err := btl.ReadNpy(evaluateConfig.FeaturesFileName)
	btl.HandleError(err)

	prediction, err := btl.PredictBatch(trees, features, evaluateConfig.TreesNumber, profile.PrecisionMultiplier)
	btl.HandleError(err)

	btl.HandleError(btl.WriteNpy(evaluateConfig.PredictionFileName, prediction))
}

type GraphConfig struct {
	ModelFileName     string `json:"filename_model_dump"`
	FigureType        string `json:"figure_type"`
	PicturesDirectory string `json:"pictures_directory"`
	DumpPrefix        string `json:"dump_prefix"`
}

func graph(srcConfig string) {
	var graphConfig GraphConfig
	decodeConfig(srcConfig, &graphConfig)

	trees, err := btl.LoadEnsemble(graphConfig.ModelFileName)
	btl.HandleError(err)

	btl.HandleError(btl.RenderTrees(trees, graphConfig.DumpPrefix, graphConfig.FigureType, graphConfig.PicturesDirectory))
}

func main() {
	runMode := flag.String("mode", "convert", "you can select either 'convert', 'testvector', 'evaluate' or 'graph' modes")
	config := flag.String("config", "transpiler_config.json", "a config file for the run of the program")

	flag.Parse()

	handler, ok := map[string]func(string){
		"convert":    convert,
		"testvector": testVector,
		"evaluate":   evaluate,
		"graph":      graph,
	}[*runMode]
	if !ok {
		log.Fatalf("unknown mode %q", *runMode)
	}
	handler(*config)
}
