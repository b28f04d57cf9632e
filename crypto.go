// Package go_pkcrypto implements textbook RSA, ElGamal and DSA over
// arbitrary-precision integers.
//
// IMPORTANT: These are the classroom forms of the algorithms. RSA is
// unpadded, ElGamal encrypts raw group elements, messages are plain
// integers, arithmetic is not constant-time and no parameter is ever
// validated. Use crypto/rsa, crypto/ecdsa or crypto/ed25519 for anything
// that protects real data.
//
// Architecture:
//   - Capabilities: Encrypter[C] (Encrypt/Decrypt) and Signer[S]
//     (Hash/Sign/Verify), generic over the result shape
//   - Shapes: Single (one integer) and Pair (two integers)
//   - RSA implements Encrypter[Single] and Signer[Single]
//   - ElGamal implements Encrypter[Pair]
//   - DSA implements Signer[Pair]
//
// Because the shape is part of the type, handing an ElGamal ciphertext to
// RSA, or an RSA signature to DSA, does not compile.
//
// Shared substrate:
//   - math/big for modular exponentiation
//   - Fermat inversion (a^(n-2) mod n) for inverses modulo a prime
//   - RandomInRange for ephemeral secrets, backed by crypto/rand
//   - Digest: SHA-256 over the decimal rendering of a message
//
// Parameter sets are built by the caller (NewRSA, NewElGamal, NewDSA or a
// struct literal); the Fixture* functions return well-known sets for tests
// and demos. Operations can be observed through InstrumentEncrypter and
// InstrumentSigner with an InMemoryMetrics or PrometheusMetrics collector.
//
// See Also:
//   - examples/ - runnable demonstrations
//   - cmd/pkcrypto - command line front end over the fixtures
package go_pkcrypto
