package bookmark

import "context"

// Repository はブックマーク状態を保存する名前付きスロットの抽象です。
// スロットが存在しない場合 Load は ErrStateNotFound を返します。
type Repository interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, payload []byte) error
}
