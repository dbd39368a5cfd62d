package sm4_test

import (
	"fmt"

	"github.com/paul-lee-attorney/gmsm4/sm4"
)

func ExampleEngine_EncryptBlock() {
	key, _ := sm4.ParseKey("01234567 89abcdef fedcba98 76543210")
	plain, _ := sm4.ParseBlock("01234567 89abcdef fedcba98 76543210")

	rk := sm4.GenerateRoundKeys(key)

	sm4.InitTables()
	engine, err := sm4.TableEngine()
	if err != nil {
		panic(err)
	}

	c := engine.EncryptBlock(plain, &rk)
	fmt.Println(c)
	fmt.Println(engine.DecryptBlock(c, &rk))

	// Output:
	// 681edf34 d206965e 86b3e94f 536e4246
	// 01234567 89abcdef fedcba98 76543210
}
