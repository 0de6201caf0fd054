package builtins

import (
	"encoding/hex"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/ripemd160"

	"github.com/mongoosemoo/lumisp/types"
)

// registerCrypto wires string-hash, string-hash-argon2, and
// string-verify-argon2 — a SPEC_FULL.md §4.4 supplement built on
// golang.org/x/crypto's ripemd160 digest and argon2 (Argon2id) key
// derivation.
func registerCrypto(r *Registry) {
	r.Register("string-hash", builtinStringHash)
	r.Register("string-hash-argon2", builtinStringHashArgon2)
	r.Register("string-verify-argon2", builtinStringVerifyArgon2)
}

const (
	argon2Time    = 1
	argon2Memory  = 64 * 1024
	argon2Threads = 4
	argon2KeyLen  = 32
)

func builtinStringHash(args []types.Value) types.Result {
	if len(args) != 1 {
		return types.Fail(types.E_ARITY_MISMATCH, "string-hash requires 1 argument")
	}
	s, ok := args[0].(types.StrValue)
	if !ok {
		return types.Fail(types.E_TYPE_MISMATCH, "string-hash requires a string")
	}
	h := ripemd160.New()
	h.Write([]byte(s.Val))
	return types.Ok(types.NewStr(hex.EncodeToString(h.Sum(nil))))
}

func builtinStringHashArgon2(args []types.Value) types.Result {
	if len(args) != 2 {
		return types.Fail(types.E_ARITY_MISMATCH, "string-hash-argon2 requires 2 arguments")
	}
	s, ok := args[0].(types.StrValue)
	if !ok {
		return types.Fail(types.E_TYPE_MISMATCH, "string-hash-argon2 requires a string")
	}
	salt, ok := args[1].(types.StrValue)
	if !ok {
		return types.Fail(types.E_TYPE_MISMATCH, "string-hash-argon2 requires a string salt")
	}
	digest := argon2.IDKey([]byte(s.Val), []byte(salt.Val), argon2Time, argon2Memory, argon2Threads, argon2KeyLen)
	return types.Ok(types.NewStr(hex.EncodeToString(digest)))
}

func builtinStringVerifyArgon2(args []types.Value) types.Result {
	if len(args) != 3 {
		return types.Fail(types.E_ARITY_MISMATCH, "string-verify-argon2 requires 3 arguments")
	}
	s, ok := args[0].(types.StrValue)
	if !ok {
		return types.Fail(types.E_TYPE_MISMATCH, "string-verify-argon2 requires a string")
	}
	salt, ok := args[1].(types.StrValue)
	if !ok {
		return types.Fail(types.E_TYPE_MISMATCH, "string-verify-argon2 requires a string salt")
	}
	want, ok := args[2].(types.StrValue)
	if !ok {
		return types.Fail(types.E_TYPE_MISMATCH, "string-verify-argon2 requires a string hash")
	}
	digest := argon2.IDKey([]byte(s.Val), []byte(salt.Val), argon2Time, argon2Memory, argon2Threads, argon2KeyLen)
	got := hex.EncodeToString(digest)
	return types.Ok(types.NewBool(got == want.Val))
}
