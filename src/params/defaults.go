package params

// DefaultDocument is the seed used when no file is given.
func DefaultDocument() Document {
	return Document{
		Params: []Param{
			{ID: 1, Name: "Purpose", Type: TypeString},
			{ID: 2, Name: "Length", Type: TypeString},
		},
		Model: Model{
			ParamValues: []ParamValue{
				{ParamID: 1, Value: "casual"},
				{ParamID: 2, Value: "maxi"},
			},
			Colors: []Color{{ColorID: 1, Value: "red"}},
		},
	}
}
