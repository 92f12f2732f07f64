package cli

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sudeeprj-pks/SCT-CS-3/internal/util"
	"github.com/sudeeprj-pks/SCT-CS-3/pkg/audit"
)

var (
	auditCmd = &cobra.Command{
		Use:   "audit",
		Short: "Assess every candidate password in a file and write a JSON-lines report",
		RunE: func(cmd *cobra.Command, args []string) error {
			return auditCommand()
		},
	}
)

//goland:noinspection GoUnhandledErrorResult
func init() {
	auditCmd.Flags().StringVarP(&inputFile, "in-file", "i", "", "Candidate password list, one per line (required)")
	auditCmd.MarkFlagRequired("in-file")
	auditCmd.Flags().StringVarP(&outFile, "out-file", "o", "./audit-report.jsonl", "Report output path. Can be absolute or relative.")
	auditCmd.Flags().IntVarP(&threads, "threads", "t", 0, "Number of threads to use for the audit. If omitted or less than 1, defaults to the number of logical processors of the machine.")
	auditCmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite any existing files while writing the results.")

	rootCmd.AddCommand(auditCmd)
}

func auditCommand() error {
	util.ApplyCliSettings(verbose, profile, pprofPort)

	cfg, err := scoringConfig()
	if err != nil {
		return err
	}

	s := util.Stats()
	defer s()

	file, err := os.Open(inputFile)
	if err != nil {
		return err
	}

	defer func(file *os.File) {
		if err = file.Close(); err != nil {
			log.Error().Err(err).Msg("error closing candidate list file")
		}
	}(file)

	abs, err := filepath.Abs(outFile)
	if err != nil {
		log.Fatal().Err(err).Msgf("could not get absolute path of file")
	}

	if !overwrite {
		_, err = os.Stat(abs)
		if !os.IsNotExist(err) {
			log.Fatal().Msgf("file %s exists and overwrite flag is not set", outFile)
		}
	}

	out, err := os.Create(abs)
	if err != nil {
		return err
	}

	defer func(out *os.File) {
		if err = out.Close(); err != nil {
			log.Error().Err(err).Msg("error closing report file")
		}
	}(out)

	auditor := audit.NewAuditor(file, out, threads, cfg)
	if err = auditor.Process(); err != nil {
		return err
	}

	return nil
}
