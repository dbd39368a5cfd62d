package sm4

import "errors"

var (
	// ErrInvalidLength 代表分组、秘钥不是4个“字”，或轮秘钥不是32个“字”。
	ErrInvalidLength = errors.New("sm4: invalid length")

	// ErrNotInitialized 代表在 InitTables() 完成之前请求了查表加速的轮函数。
	ErrNotInitialized = errors.New("sm4: acceleration tables not initialized")

	// ErrNilTransform 代表引擎未绑定合成置换，通常源于未经 NewEngine() 创设的零值 Engine。
	ErrNilTransform = errors.New("sm4: nil round transform")

	// ErrInvalidDirection 代表既非 Encrypt 亦非 Decrypt 的方向。
	ErrInvalidDirection = errors.New("sm4: invalid direction")
)
