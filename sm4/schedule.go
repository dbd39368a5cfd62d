package sm4

// GenerateRoundKeys 为国标(7.3)定义的秘钥扩展算法函数。
// (1) 将加密秘钥MK[i]与系统参数FK[i]进行异或运算获得K[i], (i=0, 1, 2, 3)
// (2) 按 K[i+4] = K[i] ^ T'(K[i+1]^K[i+2]^K[i+3]^CK[i]) 迭代32次
// (3) 取 rk[i] = K[i+4], (i=0, 1, ... 31)
// 相同的秘钥总是生成相同的轮秘钥；轮秘钥生成后不再修改，加密和解密共用。
func GenerateRoundKeys(key Key) RoundKeys {
	var k [Rounds + BlockWords]uint32
	for i := 0; i < BlockWords; i++ {
		k[i] = key[i] ^ fK[i]
	}
	for i := 0; i < Rounds; i++ {
		k[i+4] = k[i] ^ tAp(k[i+1]^k[i+2]^k[i+3]^cK[i])
	}

	var rk RoundKeys
	copy(rk[:], k[BlockWords:])
	return rk
}

// ExpandKey 校验“字”数组长度后生成轮秘钥，长度不为4时返回 ErrInvalidLength。
func ExpandKey(words []uint32) (RoundKeys, error) {
	key, err := NewKey(words...)
	if err != nil {
		return RoundKeys{}, err
	}
	return GenerateRoundKeys(key), nil
}
