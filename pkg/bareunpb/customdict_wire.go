package bareunpb

func (d *DictSet) appendWire(b []byte) []byte {
	if d == nil {
		return b
	}
	b = appendMap(b, 1, d.Items, func(entry []byte, v int32) []byte {
		return appendInt32(entry, 2, v)
	})
	b = appendInt32(b, 2, int32(d.Type))
	return appendString(b, 3, d.Name)
}

func (d *DictSet) unmarshalWire(b []byte) error {
	return eachField(b, func(f field) error {
		switch f.num {
		case 1:
			key, value, err := consumeEntry(f)
			if err != nil {
				return err
			}
			if d.Items == nil {
				d.Items = map[string]int32{}
			}
			d.Items[key] = value.asInt32()
		case 2:
			d.Type = DictType(f.asInt32())
		case 3:
			d.Name = f.asString()
		}
		return nil
	})
}

func (c *CustomDictionary) appendWire(b []byte) []byte {
	if c == nil {
		return b
	}
	b = appendString(b, 1, c.DomainName)
	b = appendMessage(b, 2, c.NpSet)
	b = appendMessage(b, 3, c.CpSet)
	b = appendMessage(b, 4, c.CpCaretSet)
	b = appendMessage(b, 5, c.VvSet)
	return appendMessage(b, 6, c.VaSet)
}

func (c *CustomDictionary) unmarshalWire(b []byte) error {
	return eachField(b, func(f field) (err error) {
		switch f.num {
		case 1:
			c.DomainName = f.asString()
		case 2:
			c.NpSet, err = consumeMessage[*DictSet](f)
		case 3:
			c.CpSet, err = consumeMessage[*DictSet](f)
		case 4:
			c.CpCaretSet, err = consumeMessage[*DictSet](f)
		case 5:
			c.VvSet, err = consumeMessage[*DictSet](f)
		case 6:
			c.VaSet, err = consumeMessage[*DictSet](f)
		}
		return err
	})
}

func (m *CustomDictionaryMeta) appendWire(b []byte) []byte {
	if m == nil {
		return b
	}
	b = appendString(b, 1, m.DomainName)
	b = appendInt32(b, 2, m.NpSetCount)
	b = appendInt32(b, 3, m.CpSetCount)
	b = appendInt32(b, 4, m.CpCaretSetCount)
	b = appendInt32(b, 5, m.VvSetCount)
	return appendInt32(b, 6, m.VaSetCount)
}

func (m *CustomDictionaryMeta) unmarshalWire(b []byte) error {
	return eachField(b, func(f field) error {
		switch f.num {
		case 1:
			m.DomainName = f.asString()
		case 2:
			m.NpSetCount = f.asInt32()
		case 3:
			m.CpSetCount = f.asInt32()
		case 4:
			m.CpCaretSetCount = f.asInt32()
		case 5:
			m.VvSetCount = f.asInt32()
		case 6:
			m.VaSetCount = f.asInt32()
		}
		return nil
	})
}

func (r *GetCustomDictionaryListResponse) appendWire(b []byte) []byte {
	if r == nil {
		return b
	}
	return appendMessages(b, 1, r.DomainDicts)
}

func (r *GetCustomDictionaryListResponse) unmarshalWire(b []byte) error {
	return eachField(b, func(f field) (err error) {
		if f.num == 1 {
			r.DomainDicts, err = appendConsumed(r.DomainDicts, f)
		}
		return err
	})
}

func (r *GetCustomDictionaryRequest) appendWire(b []byte) []byte {
	if r == nil {
		return b
	}
	return appendString(b, 1, r.DomainName)
}

func (r *GetCustomDictionaryRequest) unmarshalWire(b []byte) error {
	return eachField(b, func(f field) error {
		if f.num == 1 {
			r.DomainName = f.asString()
		}
		return nil
	})
}

func (r *GetCustomDictionaryResponse) appendWire(b []byte) []byte {
	if r == nil {
		return b
	}
	b = appendString(b, 1, r.DomainName)
	return appendMessage(b, 2, r.Dict)
}

func (r *GetCustomDictionaryResponse) unmarshalWire(b []byte) error {
	return eachField(b, func(f field) (err error) {
		switch f.num {
		case 1:
			r.DomainName = f.asString()
		case 2:
			r.Dict, err = consumeMessage[*CustomDictionary](f)
		}
		return err
	})
}

func (r *UpdateCustomDictionaryRequest) appendWire(b []byte) []byte {
	if r == nil {
		return b
	}
	b = appendString(b, 1, r.DomainName)
	return appendMessage(b, 2, r.Dict)
}

func (r *UpdateCustomDictionaryRequest) unmarshalWire(b []byte) error {
	return eachField(b, func(f field) (err error) {
		switch f.num {
		case 1:
			r.DomainName = f.asString()
		case 2:
			r.Dict, err = consumeMessage[*CustomDictionary](f)
		}
		return err
	})
}

func (r *UpdateCustomDictionaryResponse) appendWire(b []byte) []byte {
	if r == nil {
		return b
	}
	return appendString(b, 1, r.UpdatedDomainName)
}

func (r *UpdateCustomDictionaryResponse) unmarshalWire(b []byte) error {
	return eachField(b, func(f field) error {
		if f.num == 1 {
			r.UpdatedDomainName = f.asString()
		}
		return nil
	})
}

func (r *RemoveCustomDictionariesRequest) appendWire(b []byte) []byte {
	if r == nil {
		return b
	}
	b = appendStrings(b, 1, r.DomainNames)
	return appendBool(b, 2, r.All)
}

func (r *RemoveCustomDictionariesRequest) unmarshalWire(b []byte) error {
	return eachField(b, func(f field) error {
		switch f.num {
		case 1:
			r.DomainNames = append(r.DomainNames, f.asString())
		case 2:
			r.All = f.asBool()
		}
		return nil
	})
}

func (r *RemoveCustomDictionariesResponse) appendWire(b []byte) []byte {
	if r == nil {
		return b
	}
	return appendMap(b, 1, r.DeletedDomainNames, func(entry []byte, v bool) []byte {
		return appendBool(entry, 2, v)
	})
}

func (r *RemoveCustomDictionariesResponse) unmarshalWire(b []byte) error {
	return eachField(b, func(f field) error {
		if f.num != 1 {
			return nil
		}
		key, value, err := consumeEntry(f)
		if err != nil {
			return err
		}
		if r.DeletedDomainNames == nil {
			r.DeletedDomainNames = map[string]bool{}
		}
		r.DeletedDomainNames[key] = value.asBool()
		return nil
	})
}

func (r *CheckConflictRequest) appendWire(b []byte) []byte {
	if r == nil {
		return b
	}
	return appendStrings(b, 1, r.DomainNames)
}

func (r *CheckConflictRequest) unmarshalWire(b []byte) error {
	return eachField(b, func(f field) error {
		if f.num == 1 {
			r.DomainNames = append(r.DomainNames, f.asString())
		}
		return nil
	})
}

func (c *DictConflict) appendWire(b []byte) []byte {
	if c == nil {
		return b
	}
	b = appendString(b, 1, c.Word)
	return appendStrings(b, 2, c.DomainNames)
}

func (c *DictConflict) unmarshalWire(b []byte) error {
	return eachField(b, func(f field) error {
		switch f.num {
		case 1:
			c.Word = f.asString()
		case 2:
			c.DomainNames = append(c.DomainNames, f.asString())
		}
		return nil
	})
}

func (r *CheckConflictResponse) appendWire(b []byte) []byte {
	if r == nil {
		return b
	}
	return appendMessages(b, 1, r.Conflicts)
}

func (r *CheckConflictResponse) unmarshalWire(b []byte) error {
	return eachField(b, func(f field) (err error) {
		if f.num == 1 {
			r.Conflicts, err = appendConsumed(r.Conflicts, f)
		}
		return err
	})
}
