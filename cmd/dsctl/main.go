// Command dsctl 回放并查集场景文件并输出各元素所在分组的大小.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
