//go:build !(386 || amd64 || amd64p32 || arm || arm64 || loong64 || mips64le || mipsle || ppc64le || riscv64 || wasm)

package ints

// fast is off on big-endian targets, where every width is decoded one byte
// at a time.
const fast = false
