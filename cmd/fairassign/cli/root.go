// Package cli binds the fairassign command's flags and config file via
// cobra and viper, matching the richest CLI stack in the retrieved
// corpus.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"fairassign/internal/builder"
	"fairassign/internal/domain"
	"fairassign/internal/export"
	"fairassign/internal/ingest"
	"fairassign/internal/solver"
	"fairassign/internal/verifier"
)

var cfgFile string

// Execute runs the fairassign root command.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fairassign",
		Short: "Assign students to career-fair presentations and rooms",
		RunE:  runAssign,
	}

	flags := cmd.Flags()
	flags.String("students", "students.csv", "path to the student wish-list CSV")
	flags.String("rooms", "rooms.csv", "path to the room capacity CSV")
	flags.String("out-dir", ".", "directory to write per-half-day JSON exports")
	flags.Int("num-conferences", 19, "number of Conference presentations")
	flags.Int("num-roundtables", 6, "number of RoundTable presentations")
	flags.Int("num-flashjobs", 6, "number of FlashJob presentations")
	flags.Int("num-workers", 8, "backend solver worker count")
	flags.Int("linearization-level", 2, "backend LP relaxation aggressiveness 0..2")
	flags.Float64("max-wall-seconds", 0, "solve deadline in seconds, 0 = no deadline")
	flags.Float64("capacity-buffer", 1.20, "room capacity absorption buffer")
	flags.Bool("log-progress", false, "emit backend search progress logs")

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: fairassign.yaml in the working directory)")

	viper.BindPFlags(flags)

	return cmd
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("fairassign")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}
	viper.SetEnvPrefix("FAIRASSIGN")
	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}

func runAssign(cmd *cobra.Command, args []string) error {
	initConfig()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	counts := domain.Counts{
		NC: viper.GetInt("num-conferences"),
		NR: viper.GetInt("num-roundtables"),
		NJ: viper.GetInt("num-flashjobs"),
	}

	students, err := ingest.LoadStudents(viper.GetString("students"))
	if err != nil {
		return fmt.Errorf("fairassign: %w", err)
	}
	rooms, err := ingest.LoadRooms(viper.GetString("rooms"), viper.GetFloat64("capacity-buffer"))
	if err != nil {
		return fmt.Errorf("fairassign: %w", err)
	}

	cfg := solver.DefaultConfig()
	cfg.NumWorkers = viper.GetInt("num-workers")
	cfg.LinearizationLevel = viper.GetInt("linearization-level")
	cfg.MaxWallSeconds = viper.GetFloat64("max-wall-seconds")
	cfg.LogProgress = viper.GetBool("log-progress")
	cfg.CapacityBuffer = viper.GetFloat64("capacity-buffer")
	cfg.ObjectiveWeights = builder.DefaultWeights()

	driver := solver.NewDriver(cfg, logger)
	results := driver.RunAllHalfDays(students, rooms, counts)

	outDir := viper.GetString("out-dir")
	for _, res := range results {
		if res.Err != nil {
			logger.Error().Err(res.Err).Int("half_day", res.HalfDay).Msg("half-day aborted")
			continue
		}

		var rep *verifier.Report
		if res.Solution.Status.Solvable() {
			rep = verifier.Verify(res.Solution, studentsForHalfDay(students, res.HalfDay), rooms, counts, res.Maps, cfg.ObjectiveWeights)
			if !rep.AllPass() {
				logger.Warn().Int("half_day", res.HalfDay).Msg("verifier flagged a constraint failure")
			}
		}

		filename := fmt.Sprintf("%s/half_day_%d.json", outDir, res.HalfDay)
		if err := export.WriteJSON(res.Solution, rep, filename); err != nil {
			logger.Error().Err(err).Int("half_day", res.HalfDay).Msg("export failed")
		}
	}

	return nil
}

func studentsForHalfDay(students []domain.Student, halfDay int) []domain.Student {
	var out []domain.Student
	for _, s := range students {
		if s.ArrivalCode/2 == halfDay {
			out = append(out, s)
		}
	}
	return out
}
