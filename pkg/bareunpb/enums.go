package bareunpb

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Tag is the part-of-speech tag of a morpheme (Sejong tag set with Bareun extensions).
type Tag int32

const (
	Tag_UNK Tag = 0
	Tag_EC  Tag = 1
	Tag_EF  Tag = 2
	Tag_EP  Tag = 3
	Tag_ETM Tag = 4
	Tag_ETN Tag = 5
	Tag_IC  Tag = 6
	Tag_JC  Tag = 7
	Tag_JKB Tag = 8
	Tag_JKC Tag = 9
	Tag_JKG Tag = 10
	Tag_JKO Tag = 11
	Tag_JKQ Tag = 12
	Tag_JKS Tag = 13
	Tag_JKV Tag = 14
	Tag_JX  Tag = 15
	Tag_MAG Tag = 16
	Tag_MAJ Tag = 17
	Tag_MMA Tag = 18
	Tag_MMD Tag = 19
	Tag_MMN Tag = 20
	Tag_NA  Tag = 21
	Tag_NF  Tag = 22
	Tag_NNB Tag = 23
	Tag_NNG Tag = 24
	Tag_NNP Tag = 25
	Tag_NP  Tag = 26
	Tag_NR  Tag = 27
	Tag_NV  Tag = 28
	Tag_SE  Tag = 29
	Tag_SF  Tag = 30
	Tag_SH  Tag = 31
	Tag_SL  Tag = 32
	Tag_SN  Tag = 33
	Tag_SO  Tag = 34
	Tag_SP  Tag = 35
	Tag_SS  Tag = 36
	Tag_SW  Tag = 37
	Tag_VA  Tag = 38
	Tag_VCN Tag = 39
	Tag_VCP Tag = 40
	Tag_VV  Tag = 41
	Tag_VX  Tag = 42
	Tag_XPN Tag = 43
	Tag_XR  Tag = 44
	Tag_XSA Tag = 45
	Tag_XSN Tag = 46
	Tag_XSV Tag = 47
	Tag_SWK Tag = 48
)

var tagNames = map[Tag]string{
	Tag_UNK: "UNK", Tag_EC: "EC", Tag_EF: "EF", Tag_EP: "EP", Tag_ETM: "ETM", Tag_ETN: "ETN",
	Tag_IC: "IC", Tag_JC: "JC", Tag_JKB: "JKB", Tag_JKC: "JKC", Tag_JKG: "JKG", Tag_JKO: "JKO",
	Tag_JKQ: "JKQ", Tag_JKS: "JKS", Tag_JKV: "JKV", Tag_JX: "JX", Tag_MAG: "MAG", Tag_MAJ: "MAJ",
	Tag_MMA: "MMA", Tag_MMD: "MMD", Tag_MMN: "MMN", Tag_NA: "NA", Tag_NF: "NF", Tag_NNB: "NNB",
	Tag_NNG: "NNG", Tag_NNP: "NNP", Tag_NP: "NP", Tag_NR: "NR", Tag_NV: "NV", Tag_SE: "SE",
	Tag_SF: "SF", Tag_SH: "SH", Tag_SL: "SL", Tag_SN: "SN", Tag_SO: "SO", Tag_SP: "SP",
	Tag_SS: "SS", Tag_SW: "SW", Tag_VA: "VA", Tag_VCN: "VCN", Tag_VCP: "VCP", Tag_VV: "VV",
	Tag_VX: "VX", Tag_XPN: "XPN", Tag_XR: "XR", Tag_XSA: "XSA", Tag_XSN: "XSN", Tag_XSV: "XSV",
	Tag_SWK: "SWK",
}

var tagValues = invert(tagNames)

// String returns the canonical tag name, e.g. "NNG".
func (t Tag) String() string {
	if name, ok := tagNames[t]; ok {
		return name
	}
	return strconv.Itoa(int(t))
}

// ParseTag looks up a tag by its canonical name.
func ParseTag(name string) (Tag, bool) {
	t, ok := tagValues[name]
	return t, ok
}

func (t Tag) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *Tag) UnmarshalJSON(data []byte) error {
	v, err := unmarshalEnum(data, tagValues)
	if err != nil {
		return fmt.Errorf("tag: %w", err)
	}
	*t = v
	return nil
}

// OutOfVocab reports how the analyzer recognized a morpheme's surface form.
type OutOfVocab int32

const (
	OutOfVocab_IN_WORD_EMBEDDING OutOfVocab = 0
	OutOfVocab_OUT_OF_VOCAB      OutOfVocab = 1
	OutOfVocab_IN_CUSTOM_DICT    OutOfVocab = 2
	OutOfVocab_IN_BUILTIN_DICT   OutOfVocab = 3
)

var oovNames = map[OutOfVocab]string{
	OutOfVocab_IN_WORD_EMBEDDING: "IN_WORD_EMBEDDING",
	OutOfVocab_OUT_OF_VOCAB:      "OUT_OF_VOCAB",
	OutOfVocab_IN_CUSTOM_DICT:    "IN_CUSTOM_DICT",
	OutOfVocab_IN_BUILTIN_DICT:   "IN_BUILTIN_DICT",
}

var oovValues = invert(oovNames)

func (o OutOfVocab) String() string {
	if name, ok := oovNames[o]; ok {
		return name
	}
	return strconv.Itoa(int(o))
}

// ParseOutOfVocab looks up an out-of-vocabulary status by its canonical name.
func ParseOutOfVocab(name string) (OutOfVocab, bool) {
	o, ok := oovValues[name]
	return o, ok
}

func (o OutOfVocab) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

func (o *OutOfVocab) UnmarshalJSON(data []byte) error {
	v, err := unmarshalEnum(data, oovValues)
	if err != nil {
		return fmt.Errorf("out_of_vocab: %w", err)
	}
	*o = v
	return nil
}

// EncodingType selects the unit of the offsets reported in TextSpan.
type EncodingType int32

const (
	EncodingType_NONE  EncodingType = 0
	EncodingType_UTF8  EncodingType = 1
	EncodingType_UTF16 EncodingType = 2
	EncodingType_UTF32 EncodingType = 3
)

var encodingNames = map[EncodingType]string{
	EncodingType_NONE:  "NONE",
	EncodingType_UTF8:  "UTF8",
	EncodingType_UTF16: "UTF16",
	EncodingType_UTF32: "UTF32",
}

var encodingValues = invert(encodingNames)

func (e EncodingType) String() string {
	if name, ok := encodingNames[e]; ok {
		return name
	}
	return strconv.Itoa(int(e))
}

func (e EncodingType) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.String())
}

func (e *EncodingType) UnmarshalJSON(data []byte) error {
	v, err := unmarshalEnum(data, encodingValues)
	if err != nil {
		return fmt.Errorf("encoding_type: %w", err)
	}
	*e = v
	return nil
}

// DictType is the storage form of a DictSet.
type DictType int32

const (
	DictType_TOKEN_INDEX        DictType = 0
	DictType_WORD_LIST          DictType = 1
	DictType_WORD_LIST_COMPOUND DictType = 2
)

var dictTypeNames = map[DictType]string{
	DictType_TOKEN_INDEX:        "TOKEN_INDEX",
	DictType_WORD_LIST:          "WORD_LIST",
	DictType_WORD_LIST_COMPOUND: "WORD_LIST_COMPOUND",
}

var dictTypeValues = invert(dictTypeNames)

func (d DictType) String() string {
	if name, ok := dictTypeNames[d]; ok {
		return name
	}
	return strconv.Itoa(int(d))
}

func (d DictType) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *DictType) UnmarshalJSON(data []byte) error {
	v, err := unmarshalEnum(data, dictTypeValues)
	if err != nil {
		return fmt.Errorf("dict type: %w", err)
	}
	*d = v
	return nil
}

func invert[K comparable](m map[K]string) map[string]K {
	out := make(map[string]K, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

// unmarshalEnum accepts either the canonical name or the numeric value.
func unmarshalEnum[E ~int32](data []byte, values map[string]E) (E, error) {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		v, ok := values[name]
		if !ok {
			return 0, fmt.Errorf("unknown value %q", name)
		}
		return v, nil
	}
	var n int32
	if err := json.Unmarshal(data, &n); err != nil {
		return 0, err
	}
	return E(n), nil
}
