package go_pkcrypto

// Algorithm names used for logging and metrics labels
const (
	ALGORITHM_RSA     = "rsa"
	ALGORITHM_ELGAMAL = "elgamal"
	ALGORITHM_DSA     = "dsa"
)

// Operation names used for logging and metrics labels
const (
	OPERATION_ENCRYPT = "encrypt"
	OPERATION_DECRYPT = "decrypt"
	OPERATION_SIGN    = "sign"
	OPERATION_VERIFY  = "verify"
)

// MaxSignAttempts bounds the number of ephemeral secrets DSA draws for a
// single signature before giving up. A fresh k is drawn whenever the
// previous one produced r == 0 or s == 0.
const MaxSignAttempts = 10

// Logger Level Constants
const (
	DEBUG   = 1 << 4
	INFO    = 1 << 5
	WARNING = 1 << 6
	ERROR   = 1 << 7
	FATAL   = 1 << 8
)
