package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB — ограничение для тестового корпуса
)

var builtinSeeds = []string{
	"",
	"actor Main\nnew create(env: Env) =>\nenv.out.print(\"Hi\")\n",
	"if true then\nenv.out.print(\"yes\")\nend",
	"primitive P\nclass C\n",
	"type Num is (U8 | I64)\nuse \"net\"\ntrait T\ninterface I\nstruct S\n",
	"\"\"\"docstring\"\"\"\nactor A\n  be b() => None",
	"x = 'c' + 0x1F + 1.5e3 // c\n/* nested /* block */ comment */",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range builtinSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.pony файлы
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".pony" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
