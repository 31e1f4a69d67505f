package codec

import (
	"encoding/json"
	"fmt"

	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// Name は content-subtype として使うコーデック名です。
const Name = "json"

// JSON は gRPC のメッセージを JSON で符号化するコーデックです。
// proto.Message は protojson、それ以外の Go 構造体は encoding/json で扱います。
type JSON struct{}

func init() {
	encoding.RegisterCodec(JSON{})
}

// Name はコーデック名を返します。
func (JSON) Name() string {
	return Name
}

// Marshal は v を JSON に変換します。
func (JSON) Marshal(v any) ([]byte, error) {
	if m, ok := v.(proto.Message); ok {
		return protojson.Marshal(m)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("codec: marshal %T: %w", v, err)
	}
	return b, nil
}

// Unmarshal は JSON を v に変換します。空の入力はゼロ値のまま扱います。
func (JSON) Unmarshal(data []byte, v any) error {
	if m, ok := v.(proto.Message); ok {
		return protojson.UnmarshalOptions{DiscardUnknown: true}.Unmarshal(data, m)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("codec: unmarshal %T: %w", v, err)
	}
	return nil
}
