package sm4

import "fmt"

// Direction 决定轮秘钥的使用顺序。
type Direction uint8

const (
	// Encrypt 按 rk[0], rk[1], ... rk[31] 的顺序使用轮秘钥。
	Encrypt Direction = iota

	// Decrypt 按 rk[31], rk[30], ... rk[0] 的顺序使用轮秘钥。
	Decrypt
)

// String 返回方向的名称。
func (d Direction) String() string {
	switch d {
	case Encrypt:
		return "encrypt"
	case Decrypt:
		return "decrypt"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// Engine 为SM4的轮函数引擎，对合成置换T(.)的具体实现保持多态。
// Engine 创建后只读，可被任意多个goroutine并发使用。
type Engine struct {
	tr RoundTransform
}

// NewEngine 以给定的合成置换创设引擎。
// 传入尚未构建的 *Tables 时返回 ErrNotInitialized。
func NewEngine(tr RoundTransform) (*Engine, error) {
	if tr == nil {
		return nil, ErrNilTransform
	}
	if r, ok := tr.(interface{ ready() error }); ok {
		if err := r.ready(); err != nil {
			return nil, err
		}
	}
	return &Engine{tr: tr}, nil
}

// DirectEngine 返回采用直接计算的引擎。
func DirectEngine() *Engine {
	return &Engine{tr: Direct}
}

// TableEngine 返回采用查表加速的引擎。
// 若 InitTables() 尚未执行，返回 ErrNotInitialized。
func TableEngine() (*Engine, error) {
	tb, err := LoadTables()
	if err != nil {
		return nil, err
	}
	return NewEngine(tb)
}

// Transform 返回引擎所用的合成置换。
func (e *Engine) Transform() RoundTransform {
	return e.tr
}

// EncryptBlock 用轮秘钥rk加密一个分组。
func (e *Engine) EncryptBlock(b Block, rk *RoundKeys) Block {
	return e.Crypt(b, rk, Encrypt)
}

// DecryptBlock 用轮秘钥rk解密一个分组。
func (e *Engine) DecryptBlock(b Block, rk *RoundKeys) Block {
	return e.Crypt(b, rk, Decrypt)
}

// Crypt 为SM4核心算法函数:
// (1) 以输入分组填充36个“字”的状态数组X的前4项；
// (2) 根据国标(7.1.(a))规定，按 X[i+4] = X[i] ^ T(X[i+1]^X[i+2]^X[i+3]^rk[r]) 迭代32轮，
// 其中加密时 r=i，解密时 r=31-i，加解密共用同一递推式；
// (3) 根据国标(7.1.(b))规定进行反序变换，输出 (X[35], X[34], X[33], X[32])。
// 零值 Engine 或未知的 Direction 属于调用错误，与分组长度不足一样以panic报告。
func (e *Engine) Crypt(b Block, rk *RoundKeys, dir Direction) Block {
	if err := e.check(dir); err != nil {
		panic(err)
	}

	var x [Rounds + BlockWords]uint32
	copy(x[:BlockWords], b[:])

	for i := 0; i < Rounds; i++ {
		r := i
		if dir == Decrypt {
			r = Rounds - 1 - i
		}
		x[i+4] = x[i] ^ e.tr.Transform(x[i+1]^x[i+2]^x[i+3]^rk[r])
	}

	return Block{x[35], x[34], x[33], x[32]}
}

// EncryptBlock 以直接计算的合成置换加密一个分组。
func EncryptBlock(b Block, rk *RoundKeys) Block {
	return DirectEngine().Crypt(b, rk, Encrypt)
}

// DecryptBlock 以直接计算的合成置换解密一个分组。
func DecryptBlock(b Block, rk *RoundKeys) Block {
	return DirectEngine().Crypt(b, rk, Decrypt)
}

// check 校验引擎已绑定合成置换且方向有效。
func (e *Engine) check(dir Direction) error {
	if e == nil || e.tr == nil {
		return ErrNilTransform
	}
	if dir != Encrypt && dir != Decrypt {
		return fmt.Errorf("%w: %v", ErrInvalidDirection, dir)
	}
	return nil
}

// CryptWords 为以“字”切片作为边界的加解密入口，
// 分组不为4个“字”或轮秘钥不为32个“字”时返回 ErrInvalidLength，
// 方向未知时返回 ErrInvalidDirection，零值引擎返回 ErrNilTransform。
func (e *Engine) CryptWords(block, roundKeys []uint32,
	dir Direction) (Block, error) {

	if err := e.check(dir); err != nil {
		return Block{}, err
	}
	b, err := NewBlock(block...)
	if err != nil {
		return Block{}, err
	}
	rk, err := NewRoundKeys(roundKeys...)
	if err != nil {
		return Block{}, err
	}
	return e.Crypt(b, &rk, dir), nil
}
