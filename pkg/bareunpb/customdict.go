package bareunpb

// DictSet is one word set of a custom dictionary. Items maps each word to 1.
type DictSet struct {
	Name  string           `json:"name"`
	Type  DictType         `json:"type"`
	Items map[string]int32 `json:"items"`
}

func (d *DictSet) GetItems() map[string]int32 {
	if d == nil {
		return nil
	}
	return d.Items
}

// CustomDictionary is the full content of one domain.
type CustomDictionary struct {
	DomainName string   `json:"domain_name"`
	NpSet      *DictSet `json:"np_set"`
	CpSet      *DictSet `json:"cp_set"`
	CpCaretSet *DictSet `json:"cp_caret_set"`
	VvSet      *DictSet `json:"vv_set"`
	VaSet      *DictSet `json:"va_set"`
}

func (c *CustomDictionary) GetNpSet() *DictSet {
	if c == nil {
		return nil
	}
	return c.NpSet
}

func (c *CustomDictionary) GetCpSet() *DictSet {
	if c == nil {
		return nil
	}
	return c.CpSet
}

func (c *CustomDictionary) GetCpCaretSet() *DictSet {
	if c == nil {
		return nil
	}
	return c.CpCaretSet
}

func (c *CustomDictionary) GetVvSet() *DictSet {
	if c == nil {
		return nil
	}
	return c.VvSet
}

func (c *CustomDictionary) GetVaSet() *DictSet {
	if c == nil {
		return nil
	}
	return c.VaSet
}

// CustomDictionaryMeta summarizes a stored domain.
type CustomDictionaryMeta struct {
	DomainName      string `json:"domain_name"`
	NpSetCount      int32  `json:"np_set_count"`
	CpSetCount      int32  `json:"cp_set_count"`
	CpCaretSetCount int32  `json:"cp_caret_set_count"`
	VvSetCount      int32  `json:"vv_set_count"`
	VaSetCount      int32  `json:"va_set_count"`
}

type GetCustomDictionaryListResponse struct {
	DomainDicts []*CustomDictionaryMeta `json:"domain_dicts"`
}

type GetCustomDictionaryRequest struct {
	DomainName string `json:"domain_name"`
}

type GetCustomDictionaryResponse struct {
	DomainName string            `json:"domain_name"`
	Dict       *CustomDictionary `json:"dict"`
}

type UpdateCustomDictionaryRequest struct {
	DomainName string            `json:"domain_name"`
	Dict       *CustomDictionary `json:"dict"`
}

type UpdateCustomDictionaryResponse struct {
	UpdatedDomainName string `json:"updated_domain_name"`
}

type RemoveCustomDictionariesRequest struct {
	DomainNames []string `json:"domain_names,omitempty"`
	All         bool     `json:"all"`
}

type RemoveCustomDictionariesResponse struct {
	DeletedDomainNames map[string]bool `json:"deleted_domain_names"`
}

type CheckConflictRequest struct {
	DomainNames []string `json:"domain_names"`
}

// DictConflict is a word registered in more than one of the checked domains.
type DictConflict struct {
	Word        string   `json:"word"`
	DomainNames []string `json:"domain_names"`
}

type CheckConflictResponse struct {
	Conflicts []*DictConflict `json:"conflicts"`
}
