package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/okitolabs/demopass/internal/web/domain"
	"github.com/okitolabs/demopass/internal/web/service"
	"github.com/okitolabs/demopass/pkg/demosdk"
)

var (
	length   int
	count    int
	withHash bool
	jsonOut  bool
	noBanner bool
)

var rootCmd = &cobra.Command{
	Use:   "passgen",
	Short: "Generate random credentials with guaranteed character classes",
	Long: `passgen generates random credentials containing at least one lowercase
letter, one uppercase letter, one digit and one special symbol, in
uniformly shuffled order.

Credentials are produced from a cryptographically secure random source
and printed once. Nothing is stored.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd.Context())
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build and runtime information",
	RunE: func(cmd *cobra.Command, args []string) error {
		info := buildInfoService().Get()
		if jsonOut {
			return json.NewEncoder(os.Stdout).Encode(demosdk.BuildInfo{
				Version:     info.Version,
				GoVersion:   info.GoVersion,
				OS:          info.OS,
				Arch:        info.Arch,
				BuildNumber: info.BuildNumber,
				GitCommit:   info.GitCommit,
				CIServer:    info.CIServer,
				Environment: info.Environment,
				Timestamp:   time.Now().UTC().Format(time.RFC3339),
			})
		}
		printBanner(info)
		return nil
	},
}

func init() {
	rootCmd.Flags().IntVarP(&length, "length", "l", 16, "credential length (minimum 4)")
	rootCmd.Flags().IntVarP(&count, "count", "n", 1, "number of credentials to generate")
	rootCmd.Flags().BoolVar(&withHash, "hash", false, "print an Argon2id hash alongside each credential")
	rootCmd.Flags().BoolVar(&noBanner, "no-banner", false, "suppress the banner")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "machine-readable JSON output")

	rootCmd.AddCommand(versionCmd)
}

func buildInfoService() *service.BuildInfoService {
	return &service.BuildInfoService{
		VersionFile: os.Getenv("DEMOPASS_VERSION_FILE"),
		Environment: getEnvOrDefault("DEPLOY_ENV", "local"),
		StartedAt:   time.Now(),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func runGenerate(ctx context.Context) error {
	// No Store: CLI generations are not audited
	generator := &service.GeneratorService{}

	creds, err := generator.Generate(ctx, service.GenerateParams{
		Length: length,
		Count:  count,
		Hash:   withHash,
		Source: domain.SourceCLI,
	})
	if err != nil {
		return err
	}

	if jsonOut {
		out := make([]demosdk.Credential, 0, len(creds))
		for _, c := range creds {
			out = append(out, demosdk.Credential{Value: c.Value, Hash: c.Hash})
		}
		return json.NewEncoder(os.Stdout).Encode(demosdk.GenerateResponse{
			Credentials: out,
			Length:      length,
		})
	}

	if !noBanner {
		printBanner(buildInfoService().Get())
	}

	for _, c := range creds {
		fmt.Println(credentialStyle.Render(c.Value))
		if c.Hash != "" {
			fmt.Println(hashStyle.Render(c.Hash))
		}
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
