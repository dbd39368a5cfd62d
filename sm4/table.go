package sm4

import (
	"math/bits"
	"sync"
	"sync/atomic"
)

// Tables 为查表加速所用的4张T-table，每张256项。
// 由于L()是线性变换，T(x) = L(τ(x)) 可拆分为4个字节各自贡献之和(异或):
//
//	T(x) = L(s[x3]<<24) ^ L(s[x2]<<16) ^ L(s[x1]<<8) ^ L(s[x0])
//
// 而L()与循环移位可交换，故 L(s[b]<<(24-8k)) = rotl(L(s[b]<<24), 8k)。
// 于是只需对每个字节值b预先计算 base = L(s[b]<<24) 及其3个循环移位。
type Tables struct {
	t0, t1, t2, t3 [256]uint32
	built          bool
}

var (
	tablesOnce sync.Once
	tables     atomic.Pointer[Tables]
)

// InitTables 构建进程内共享的T-table并返回其句柄。
// 本函数是幂等的：并发或重复调用只会构建一次，此后查找表只读。
func InitTables() *Tables {
	tablesOnce.Do(func() {
		tb := buildTables()
		tables.Store(tb)
		log.Debugf("Built %d-entry acceleration tables", len(tb.t0))
	})
	return tables.Load()
}

// LoadTables 返回已构建的T-table；若尚未调用 InitTables() 则返回 ErrNotInitialized。
func LoadTables() (*Tables, error) {
	tb := tables.Load()
	if tb == nil {
		return nil, ErrNotInitialized
	}
	return tb, nil
}

// buildTables 对每个字节值b计算 base = L(Sbox(b)<<24)，
// 再分别循环左移0、8、16、24位存入4张表。
func buildTables() *Tables {
	tb := new(Tables)
	for b := 0; b < 256; b++ {
		base := l(uint32(sBox[b]) << 24)
		tb.t0[b] = base
		tb.t1[b] = bits.RotateLeft32(base, 8)
		tb.t2[b] = bits.RotateLeft32(base, 16)
		tb.t3[b] = bits.RotateLeft32(base, 24)
	}
	tb.built = true
	return tb
}

// Transform 以4次查表和3次异或计算T(x)，与 Direct.Transform(x) 取值相同。
// 未经 InitTables() 构建的 Tables 会以 ErrNotInitialized panic，而非输出错误结果。
func (tb *Tables) Transform(x uint32) uint32 {
	if tb == nil || !tb.built {
		panic(ErrNotInitialized)
	}
	return tb.t0[x>>24] ^
		tb.t1[x>>16&0xff] ^
		tb.t2[x>>8&0xff] ^
		tb.t3[x&0xff]
}

// Name 实现 RoundTransform 接口。
func (*Tables) Name() string {
	return "table"
}

// ready 校验查找表是否已构建完成。
func (tb *Tables) ready() error {
	if tb == nil || !tb.built {
		return ErrNotInitialized
	}
	return nil
}
