package service

func strPtr(s string) *string { return &s }
