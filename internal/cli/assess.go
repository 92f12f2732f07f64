package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sudeeprj-pks/SCT-CS-3/internal/util"
	"github.com/sudeeprj-pks/SCT-CS-3/pkg/strength"
)

var (
	assessCmd = &cobra.Command{
		Use:   "assess [PASSWORD]",
		Short: "Assess the strength of a single password",
		Args: func(cmd *cobra.Command, args []string) error {
			if !interactive {
				if err := cobra.MinimumNArgs(1)(cmd, args); err != nil {
					return err
				}
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive {
				// Dummy string
				return assessCommand("")
			} else {
				return assessCommand(args[0])
			}
		},
	}
)

func init() {
	assessCmd.Flags().BoolVarP(&interactive, "interactive", "n", false, "Interactive mode. The password is prompted for with input hidden.")
	assessCmd.Flags().BoolVarP(&jsonOut, "json", "j", false, "Print the full assessment as JSON instead of the readable summary.")

	rootCmd.AddCommand(assessCmd)
}

func assessCommand(password string) error {
	util.ApplyCliSettings(verbose, profile, pprofPort)

	cfg, err := scoringConfig()
	if err != nil {
		return err
	}

	if !interactive {
		return renderAssessment(strength.Assess(password, cfg))
	}

	prompt := promptui.Prompt{
		Label: "Password",
		Mask:  '*',
		Validate: func(input string) error {
			if len(input) == 0 {
				return errors.New("please enter a password to assess")
			}
			return nil
		},
	}

	log.Info().Msgf("Running interactive session. ^C to exit")
	if err = runInteractiveSession(prompt, cfg); err != nil {
		if err.Error() == "^C" || err.Error() == "^D" {
			log.Info().Msgf("Goodbye")
		} else {
			log.Error().Err(err).Msgf("Error during interactive session")
		}
		// No return to avoid the default cobra error message
		return nil
	}

	return nil
}

func runInteractiveSession(prompt promptui.Prompt, cfg strength.Config) error {
	for {
		password, err := prompt.Run()
		if err != nil {
			return err
		}

		if err = renderAssessment(strength.Assess(password, cfg)); err != nil {
			log.Error().Err(err).Msg("Error rendering assessment")
		}
	}
}

func renderAssessment(res strength.Assessment) error {
	if jsonOut {
		data, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return err
		}

		fmt.Println(string(data))
		return nil
	}

	log.Info().Msgf("Rating: %s (%d/100)", res.Rating, res.Score)
	log.Info().Msgf("Estimated entropy: %.1f bits", res.Entropy)

	for _, f := range res.Findings {
		if f.Detail != "" {
			log.Warn().Msgf("Weakness [%s]: %s", f.Kind, f.Detail)
		} else {
			log.Warn().Msgf("Weakness [%s]", f.Kind)
		}
	}

	for _, s := range res.Suggestions {
		log.Info().Msgf("Suggestion: %s", s)
	}

	return nil
}
