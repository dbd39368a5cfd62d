// Package testvec 生成用于验证加解密正确性的随机明文与秘钥。
// 本包使用 math/rand/v2 的PCG生成器，不具备密码学安全性，不得用于生成真实秘钥。
package testvec

import (
	"math/rand/v2"
	"time"

	"github.com/paul-lee-attorney/gmsm4/sm4"
)

// Source 为可复现的随机分组与秘钥来源。Source 不是并发安全的。
type Source struct {
	seed uint64
	rng  *rand.Rand
}

// New 以给定种子创设随机来源；seed为0时以当前时间为种子。
func New(seed uint64) *Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Source{
		seed: seed,
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Seed 返回实际使用的种子，便于复现失败的用例。
func (s *Source) Seed() uint64 {
	return s.seed
}

// Block 返回一个随机分组。
func (s *Source) Block() sm4.Block {
	var b sm4.Block
	for i := range b {
		b[i] = s.rng.Uint32()
	}
	return b
}

// Key 返回一个随机秘钥。
func (s *Source) Key() sm4.Key {
	var k sm4.Key
	for i := range k {
		k[i] = s.rng.Uint32()
	}
	return k
}
