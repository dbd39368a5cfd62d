package sm4

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
)

// Block 代表128位的明文或密文分组，按“字”(32位)存储，高位字在前。
type Block [BlockWords]uint32

// Key 代表128位的加密秘钥MK=(MK0, MK1, MK2, MK3)（详见国标7.3）。
type Key [BlockWords]uint32

// RoundKeys 代表由秘钥扩展算法生成的32个轮秘钥rk[0..31]。
// 加密时按0..31的顺序使用，解密时按31..0的顺序使用。
type RoundKeys [Rounds]uint32

// NewBlock 以恰好4个“字”创设分组，否则返回 ErrInvalidLength。
func NewBlock(words ...uint32) (Block, error) {
	var b Block
	if len(words) != BlockWords {
		return b, fmt.Errorf("%w: block has %d words, want %d",
			ErrInvalidLength, len(words), BlockWords)
	}
	copy(b[:], words)
	return b, nil
}

// NewKey 以恰好4个“字”创设秘钥，否则返回 ErrInvalidLength。
func NewKey(words ...uint32) (Key, error) {
	var k Key
	if len(words) != BlockWords {
		return k, fmt.Errorf("%w: key has %d words, want %d",
			ErrInvalidLength, len(words), BlockWords)
	}
	copy(k[:], words)
	return k, nil
}

// NewRoundKeys 以恰好32个“字”创设轮秘钥，否则返回 ErrInvalidLength。
// 通常轮秘钥应由 GenerateRoundKeys() 生成，本函数用于接收外部保存的轮秘钥。
func NewRoundKeys(words ...uint32) (RoundKeys, error) {
	var rk RoundKeys
	if len(words) != Rounds {
		return rk, fmt.Errorf("%w: round key schedule has %d words, "+
			"want %d", ErrInvalidLength, len(words), Rounds)
	}
	copy(rk[:], words)
	return rk, nil
}

// BlockFromBytes 将16字节按大端序转换为分组。
func BlockFromBytes(p []byte) (Block, error) {
	var b Block
	if len(p) != BlockSize {
		return b, fmt.Errorf("%w: block has %d bytes, want %d",
			ErrInvalidLength, len(p), BlockSize)
	}
	b.SetBytes(p)
	return b, nil
}

// KeyFromBytes 将16字节按大端序转换为秘钥。
func KeyFromBytes(p []byte) (Key, error) {
	var k Key
	if len(p) != KeySize {
		return k, fmt.Errorf("%w: key has %d bytes, want %d",
			ErrInvalidLength, len(p), KeySize)
	}
	k.setBytes(p)
	return k, nil
}

// setBytes 读取p的前16字节，调用方须保证长度。
func (k *Key) setBytes(p []byte) {
	for i := range k {
		k[i] = binary.BigEndian.Uint32(p[4*i:])
	}
}

// SetBytes 读取p的前16字节，调用方须保证长度。
func (b *Block) SetBytes(p []byte) {
	b[0] = binary.BigEndian.Uint32(p[0:4])
	b[1] = binary.BigEndian.Uint32(p[4:8])
	b[2] = binary.BigEndian.Uint32(p[8:12])
	b[3] = binary.BigEndian.Uint32(p[12:16])
}

// PutBytes 将分组按大端序写入p的前16字节，调用方须保证长度。
func (b Block) PutBytes(p []byte) {
	binary.BigEndian.PutUint32(p[0:4], b[0])
	binary.BigEndian.PutUint32(p[4:8], b[1])
	binary.BigEndian.PutUint32(p[8:12], b[2])
	binary.BigEndian.PutUint32(p[12:16], b[3])
}

// Bytes 返回分组的16字节大端序表示。
func (b Block) Bytes() []byte {
	p := make([]byte, BlockSize)
	b.PutBytes(p)
	return p
}

// String 以“01234567 89abcdef fedcba98 76543210”的格式输出分组。
func (b Block) String() string {
	return formatWords(b[:])
}

// String 以与 Block 相同的格式输出秘钥。
func (k Key) String() string {
	return formatWords(k[:])
}

// ParseBlock 解析32位16进制数字表示的分组，允许以空格分隔各“字”，
// 且整体或每个“字”均可带“0x”前缀。数字个数不为32时返回 ErrInvalidLength。
func ParseBlock(s string) (Block, error) {
	p, err := parseHex(s, BlockSize)
	if err != nil {
		return Block{}, err
	}
	return BlockFromBytes(p)
}

// ParseKey 解析32位16进制数字表示的秘钥，格式同 ParseBlock。
func ParseKey(s string) (Key, error) {
	p, err := parseHex(s, KeySize)
	if err != nil {
		return Key{}, err
	}
	return KeyFromBytes(p)
}

func formatWords(w []uint32) string {
	return fmt.Sprintf("%08x %08x %08x %08x", w[0], w[1], w[2], w[3])
}

// parseHex 去除空白与各字段的“0x”前缀后，解码恰好n个字节。
func parseHex(s string, n int) ([]byte, error) {
	fields := strings.Fields(s)
	for i, f := range fields {
		fields[i] = strings.TrimPrefix(strings.TrimPrefix(f, "0x"), "0X")
	}
	s = strings.Join(fields, "")

	if len(s) != 2*n {
		return nil, fmt.Errorf("%w: %d hex digits, want %d",
			ErrInvalidLength, len(s), 2*n)
	}

	p, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("sm4: unable to parse %q: %w", s, err)
	}
	return p, nil
}
