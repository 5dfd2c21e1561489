package codec_test

import (
	"testing"

	"urlclean/internal/codec"
)

// TestEncode 验证编码行为：免编码集合之外的字节应编码为大写 %XX
func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"纯字母数字", "abcXYZ019", "abcXYZ019"},
		{"免编码符号", "a-b.c_d~e", "a-b.c_d~e"},
		{"空格", "a b", "a%20b"},
		{"加号需编码", "a+b", "a%2Bb"},
		{"等号与与号", "k=v&x", "k%3Dv%26x"},
		{"非 ASCII (UTF-8 多字节)", "日", "%E6%97%A5"},
		{"百分号本身", "100%", "100%25"},
		{"空串", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := codec.Encode(tt.in); got != tt.want {
				t.Errorf("Encode(%q) = %q, 期望 %q", tt.in, got, tt.want)
			}
		})
	}
}

// TestDecode 验证解码行为：仅识别完整 %XX，非法转义原样保留，永不失败
func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"常规转义", "a%20b", "a b"},
		{"大小写十六进制", "%2b%2B", "++"},
		{"UTF-8 多字节", "%E6%97%A5", "日"},
		{"加号不是空格", "a+b", "a+b"},
		{"截断转义保留原样", "abc%2", "abc%2"},
		{"孤立百分号保留原样", "100%", "100%"},
		{"非法十六进制保留原样", "%zz%20", "%zz "},
		{"连续转义", "%41%42%43", "ABC"},
		{"空串", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := codec.Decode(tt.in); got != tt.want {
				t.Errorf("Decode(%q) = %q, 期望 %q", tt.in, got, tt.want)
			}
		})
	}
}

// TestEncodeDecodeRoundTrip 验证编码后解码还原原文
func TestEncodeDecodeRoundTrip(t *testing.T) {
	inputs := []string{"", "hello", "a b+c", "键=值&键2", "100%", "~-._"}
	for _, in := range inputs {
		if got := codec.Decode(codec.Encode(in)); got != in {
			t.Errorf("Decode(Encode(%q)) = %q, 往返不一致", in, got)
		}
	}
}
