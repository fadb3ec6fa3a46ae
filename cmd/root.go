package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/JamesBMiddleton/nutritrack/internal/utils"
	"github.com/JamesBMiddleton/nutritrack/pkg/foods"
	"github.com/JamesBMiddleton/nutritrack/pkg/rdi"
	"github.com/JamesBMiddleton/nutritrack/pkg/session"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "nutritrack",
	Short: "Look up foods and compare their nutrients with your daily targets.",
	Long: `nutritrack searches a food composition table and shows each nutrient of a food,
or of everything you ate today, as a percentage of the recommended daily intake.

Targets depend on sex, and protein and amino acid targets scale with bodyweight.`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.nutritrack.yaml)")

	// Global flags
	rootCmd.PersistentFlags().String("data", "nutrition_data.csv", "Nutrition dataset (.csv, .html or .sqlite)")
	rootCmd.PersistentFlags().String("rdi", "", "JSON file overriding the built-in daily targets")
	rootCmd.PersistentFlags().StringP("loglevel", "l", "info", "Set log level. Available: debug, info, warn, error, fatal")
	rootCmd.PersistentFlags().Bool("no-color", false, "Draw bars without colours")
	rootCmd.PersistentFlags().String("sex", "male", "Sex used to pick daily targets: male or female")
	rootCmd.PersistentFlags().Int("weight", 70, "Bodyweight in kg, used for protein targets")
	rootCmd.PersistentFlags().Int("grams", 100, "Serving size in grams")

	bindFlag("data", "data")
	bindFlag("rdi", "rdi")
	bindFlag("loglevel", "loglevel")
	bindFlag("no-color", "no-color")
	bindFlag("profile.sex", "sex")
	bindFlag("profile.weight", "weight")
	bindFlag("profile.grams", "grams")
}

func bindFlag(key, flag string) {
	if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(err)
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".nutritrack")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("nutritrack")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	// If a config file is found, read it in.
	configErr := viper.ReadInConfig()

	// Init log library
	if err := utils.SetLogLevel(viper.GetString("loglevel")); err != nil {
		utils.Log.Warn(err)
	}

	if configErr != nil {
		if _, ok := configErr.(viper.ConfigFileNotFoundError); !ok {
			utils.Log.Warnf("reading config: %v", configErr)
		}
	} else {
		utils.Log.Debugf("using config file %s", viper.ConfigFileUsed())
	}
}

// loadTables loads the nutrition table and the RDI reference once per run.
func loadTables(ctx context.Context) (*foods.Table, *rdi.Table, error) {
	dataPath := viper.GetString("data")
	table, err := foods.Open(ctx, dataPath)
	if err != nil {
		return nil, nil, err
	}
	utils.Log.Debugf("loaded %d foods from %s", table.Len(), dataPath)

	ref := rdi.Default()
	if p := viper.GetString("rdi"); p != "" {
		if ref, err = rdi.LoadOverrides(p); err != nil {
			return nil, nil, err
		}
		utils.Log.Debugf("applied RDI overrides from %s", p)
	}
	return table, ref, nil
}

func loadSettings() (session.Settings, error) {
	sex, err := rdi.ParseSex(viper.GetString("profile.sex"))
	if err != nil {
		return session.Settings{}, err
	}
	return session.Settings{
		Grams:  viper.GetInt("profile.grams"),
		Weight: viper.GetInt("profile.weight"),
		Sex:    sex,
	}, nil
}

func newSession(ctx context.Context) (*session.Session, error) {
	table, ref, err := loadTables(ctx)
	if err != nil {
		return nil, err
	}
	settings, err := loadSettings()
	if err != nil {
		return nil, err
	}
	return session.New(table, ref, settings), nil
}
