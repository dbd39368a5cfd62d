package sm4

import "math/bits"

// RoundTransform 代表轮函数F()中所用的合成置换T(.)的一种实现。
// 任何实现对所有32位输入都必须与国标(6.2)定义的T(.)取值相同。
type RoundTransform interface {
	// Transform 计算 T(x)。
	Transform(x uint32) uint32

	// Name 返回实现的名称，用于日志与性能报告。
	Name() string
}

// directTransform 按国标定义逐步计算T(.)：先做非线性变换τ(.)，再做线性变换L()。
type directTransform struct{}

// Direct 为直接计算的合成置换，无需初始化。
var Direct RoundTransform = directTransform{}

// Transform 实现 RoundTransform 接口。
func (directTransform) Transform(x uint32) uint32 {
	return t(x)
}

// Name 实现 RoundTransform 接口。
func (directTransform) Name() string {
	return "direct"
}

// tau() 为国标(6.2.(a))规定的Sbox非线性变换τ(.)，其中：
// (1) 将输入的“字”按大端序拆分为4个字节a0, a1, a2, a3；
// (2) 以每个字节的值为下标查Sbox一维数组，即 Sbox(a)=s[a]；
// (3) 将4个替换后的字节按原顺序重新组合为一个“字”。
func tau(a uint32) uint32 {
	return uint32(sBox[a>>24])<<24 |
		uint32(sBox[a>>16&0xff])<<16 |
		uint32(sBox[a>>8&0xff])<<8 |
		uint32(sBox[a&0xff])
}

// l() 为国标(6.2.(b))规定的合成置换函数T(.)的第二步骤：线性变换函数L()。
func l(b uint32) uint32 {
	return b ^ bits.RotateLeft32(b, 2) ^ bits.RotateLeft32(b, 10) ^
		bits.RotateLeft32(b, 18) ^ bits.RotateLeft32(b, 24)
}

// t() 为国标(6.2)规定的合成置换函数T(.)
func t(z uint32) uint32 {
	return l(tau(z))
}

// lAp 为国标(7.3.(a))定义的线性变换函数L'()，仅用于秘钥扩展。
func lAp(b uint32) uint32 {
	return b ^ bits.RotateLeft32(b, 13) ^ bits.RotateLeft32(b, 23)
}

// tAp 为国标(7.3)定义的合成转置函数T'()
func tAp(z uint32) uint32 {
	return lAp(tau(z))
}
