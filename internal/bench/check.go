package bench

import (
	"fmt"
	"io"

	"github.com/paul-lee-attorney/gmsm4/internal/testvec"
	"github.com/paul-lee-attorney/gmsm4/sm4"
)

// CheckResult 为一次随机加解密正确性检测的结果。
type CheckResult struct {
	Transform  string
	Plaintext  sm4.Block
	Key        sm4.Key
	Ciphertext sm4.Block
	Decrypted  sm4.Block
	Match      bool
}

// SelfCheck 以随机明文与秘钥执行一次加密、解密并比较。
// 不一致时既返回结果也返回 ErrRoundTripMismatch，调用方不得忽略。
func SelfCheck(src *testvec.Source, engine *sm4.Engine) (*CheckResult,
	error) {

	res := &CheckResult{
		Transform: engine.Transform().Name(),
		Plaintext: src.Block(),
		Key:       src.Key(),
	}

	rk := sm4.GenerateRoundKeys(res.Key)
	res.Ciphertext = engine.EncryptBlock(res.Plaintext, &rk)
	res.Decrypted = engine.DecryptBlock(res.Ciphertext, &rk)
	res.Match = res.Decrypted == res.Plaintext

	if !res.Match {
		log.Errorf("Round trip failed with %s transform (seed=%d)",
			res.Transform, src.Seed())
		return res, fmt.Errorf("%w: plaintext %v, decrypted %v",
			ErrRoundTripMismatch, res.Plaintext, res.Decrypted)
	}
	log.Debugf("Round trip with %s transform succeeded", res.Transform)

	return res, nil
}

// Print 按“标签: 分组”的格式逐行输出检测结果。
func (r *CheckResult) Print(w io.Writer) error {
	status := "match"
	if !r.Match {
		status = "mismatch"
	}

	_, err := fmt.Fprintf(w, "[%s]\nplaintext : %v\nkey       : %v\n"+
		"ciphertext: %v\ndecrypted : %v\n%s\n", r.Transform,
		r.Plaintext, r.Key, r.Ciphertext, r.Decrypted, status)
	return err
}
