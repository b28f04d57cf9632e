package cmd

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/samber/oops"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	pkcrypto "github.com/go-i2p/go-pkcrypto"
)

const (
	EnvPrefix = "PKCRYPTO"

	FlagLogLevel = "log-level"
	FlagFixture  = "fixture"
	FlagMetrics  = "metrics"
	FlagMessage  = "message"

	FixtureSmall = "small"
	FixtureLarge = "large"
)

// state is shared by every subcommand of one root command.
type state struct {
	v       *viper.Viper
	metrics *pkcrypto.InMemoryMetrics
}

// NewRootCmd builds the pkcrypto command tree. Flags can also be set through
// PKCRYPTO_* environment variables, e.g. PKCRYPTO_LOG_LEVEL=debug.
func NewRootCmd() *cobra.Command {
	st := &state{
		v:       viper.New(),
		metrics: pkcrypto.NewInMemoryMetrics(),
	}
	st.v.SetEnvPrefix(EnvPrefix)
	st.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	st.v.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:   "pkcrypto",
		Short: "Run textbook RSA, ElGamal and DSA against built-in parameter sets",
		Long: `pkcrypto exercises the textbook public-key algorithms on the built-in
fixtures (HAC worked examples with --fixture small, 2048-bit sets with
--fixture large). It never loads keys from disk.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := st.v.BindPFlags(cmd.Flags()); err != nil {
				return oops.In("cli").Wrapf(err, "bind flags")
			}
			pkcrypto.LogInit(pkcrypto.ParseLogLevel(st.v.GetString(FlagLogLevel)))

			switch f := st.v.GetString(FlagFixture); f {
			case FixtureSmall, FixtureLarge:
				return nil
			default:
				return oops.In("cli").Errorf("unknown fixture %q (want %q or %q)", f, FixtureSmall, FixtureLarge)
			}
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			if st.v.GetBool(FlagMetrics) {
				printMetrics(cmd, st.metrics)
			}
		},
	}

	addPersistentFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(
		newRSACmd(st),
		newElGamalCmd(st),
		newDSACmd(st),
		newDigestCmd(),
	)

	return rootCmd
}

func addPersistentFlags(fs *pflag.FlagSet) {
	fs.String(FlagLogLevel, "error", "log level: debug, info, warning, error, fatal")
	fs.String(FlagFixture, FixtureLarge, "parameter set: small or large")
	fs.Bool(FlagMetrics, false, "print operation metrics after the command")
}

func addMessageFlag(cmd *cobra.Command) {
	cmd.Flags().String(FlagMessage, pkcrypto.FixtureMessage, "message as a base-10 integer")
}

// message reads --message and checks it lies in [0, modulus). A nil modulus
// only rejects negative messages.
func (st *state) message(modulus *big.Int) (*big.Int, error) {
	raw := st.v.GetString(FlagMessage)
	m, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return nil, oops.In("cli").With("message", raw).Errorf("message %q is not a base-10 integer", raw)
	}
	if m.Sign() < 0 {
		return nil, oops.In("cli").With("message", raw).Errorf("message must not be negative")
	}
	if modulus != nil && m.Cmp(modulus) >= 0 {
		return nil, oops.In("cli").With("message", raw).Errorf("message must be in [0, %s)", modulus)
	}
	return m, nil
}

func (st *state) small() bool {
	return st.v.GetString(FlagFixture) == FixtureSmall
}

func newDigestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "digest MESSAGE",
		Short: "Print the SHA-256 digest integer of a base-10 message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, ok := new(big.Int).SetString(args[0], 10)
			if !ok {
				return oops.In("cli").Errorf("message %q is not a base-10 integer", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), pkcrypto.Digest(m))
			return nil
		},
	}
}

func printMetrics(cmd *cobra.Command, m *pkcrypto.InMemoryMetrics) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nmetrics: %d operations\n", m.TotalOperations())
	for _, alg := range []string{pkcrypto.ALGORITHM_RSA, pkcrypto.ALGORITHM_ELGAMAL, pkcrypto.ALGORITHM_DSA} {
		for _, op := range []string{pkcrypto.OPERATION_ENCRYPT, pkcrypto.OPERATION_DECRYPT, pkcrypto.OPERATION_SIGN, pkcrypto.OPERATION_VERIFY} {
			if n := m.Operations(alg, op); n > 0 {
				fmt.Fprintf(out, "  %s %s: %d (avg %v)\n", alg, op, n, m.AvgLatency(alg, op))
			}
		}
	}
}
