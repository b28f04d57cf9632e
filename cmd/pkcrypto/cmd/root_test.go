package cmd

import (
	"bytes"
	"strings"
	"io"
	"testing"

	"github.com/go-i2p/logger"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestRSAEncrypt_Small(t *testing.T) {
	out, err := execute(t, "rsa", "encrypt", "--fixture", "small", "--message", "5234673")
	require.NoError(t, err)
	require.Contains(t, out, "ciphertext: Single(3650502)")
	require.Contains(t, out, "decrypted:  5234673")
	require.Contains(t, out, "round trip: true")
}

func TestRSASign_Large(t *testing.T) {
	out, err := execute(t, "rsa", "sign")
	require.NoError(t, err)
	require.Contains(t, out, "valid:     true")
}

func TestRSASign_SmallFixtureNeverVerifies(t *testing.T) {
	out, err := execute(t, "rsa", "sign", "--fixture", "small", "--message", "5234673")
	require.NoError(t, err)
	require.Contains(t, out, "valid:     false")

	help, err := execute(t, "rsa", "sign", "--help")
	require.NoError(t, err)
	require.Contains(t, help, "use --fixture large")
}

func TestLogLevelFlag(t *testing.T) {
	live := logger.GetGoI2PLogger()
	previous := live.GetLevel()
	t.Cleanup(func() {
		live.SetLevel(previous)
		live.SetOutput(io.Discard)
	})

	_, err := execute(t, "digest", "2", "--log-level", "warn")
	require.NoError(t, err)
	require.Equal(t, logger.WarnLevel, live.GetLevel())
}

func TestElGamalEncrypt(t *testing.T) {
	out, err := execute(t, "elgamal", "encrypt", "--fixture", "small", "--message", "2035")
	require.NoError(t, err)
	require.Contains(t, out, "ciphertext: Pair(")
	require.Contains(t, out, "round trip: true")
}

func TestDSASign_WithMetrics(t *testing.T) {
	out, err := execute(t, "dsa", "sign", "--metrics")
	require.NoError(t, err)
	require.Contains(t, out, "valid:     true")
	require.Contains(t, out, "dsa sign: 1")
	require.Contains(t, out, "dsa verify: 1")
}

func TestDigest(t *testing.T) {
	out, err := execute(t, "digest", "2")
	require.NoError(t, err)
	require.Equal(t, "96094161643976066833367867971426158458230048495430276217795328666133331159861", strings.TrimSpace(out))
}

func TestMessageValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"not a number", []string{"rsa", "encrypt", "--message", "abc"}, "not a base-10 integer"},
		{"negative", []string{"dsa", "sign", "--message=-1"}, "must not be negative"},
		{"above modulus", []string{"elgamal", "encrypt", "--fixture", "small", "--message", "2357"}, "must be in [0, 2357)"},
		{"unknown fixture", []string{"rsa", "encrypt", "--fixture", "huge"}, "unknown fixture"},
		{"digest not a number", []string{"digest", "x"}, "not a base-10 integer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestFixtureFromEnv(t *testing.T) {
	t.Setenv("PKCRYPTO_FIXTURE", "small")

	out, err := execute(t, "rsa", "encrypt", "--message", "5234673")
	require.NoError(t, err)
	require.Contains(t, out, "Single(3650502)")
}
