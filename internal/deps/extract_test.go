package deps

import (
	"reflect"
	"strings"
	"testing"
)

func TestExtractPythonImports(t *testing.T) {
	text := `import os
import sys, json
from mypkg.utils import helper
`
	got := Extract(text)
	expectSet(t, got, []string{"os", "sys", "json", "mypkg.utils"})
}

func TestExtractJavaImports(t *testing.T) {
	text := `package com.example;

import com.example.util.Strings;
import static com.example.util.Asserts.check;
import java.util.List;
`
	got := Extract(text)
	expectSet(t, got, []string{"com.example.util.Strings", "com.example.util.Asserts", "java.util.List"})
}

func TestExtractModuleImports(t *testing.T) {
	text := `import React from 'react';
import { useState, useEffect } from "react";
import * as path from './path-utils';
import type { Config } from './config';
const fs = require('fs');
const local = require("./local/module");
`
	got := Extract(text)
	expectSet(t, got, []string{"react", "./path-utils", "./config", "fs", "./local/module"})
}

func TestExtractNoImports(t *testing.T) {
	cases := []string{
		"",
		"x = 1\ny = 2\n",
		"// just a comment\n",
		"def f():\n    return 42\n",
	}
	for _, text := range cases {
		if got := Extract(text); len(got) != 0 {
			t.Fatalf("expected no references in %q, got %v", text, got)
		}
	}
}

func TestExtractNeverReturnsWildcards(t *testing.T) {
	text := `import a.b.*;
from mod import *
import *
import x, *
`
	for _, ref := range Extract(text) {
		if strings.Contains(ref, "*") {
			t.Fatalf("extracted reference %q contains a wildcard", ref)
		}
	}
}

func TestExtractDropsMalformedBraceImports(t *testing.T) {
	// A brace-style JS import must not leak through the plain-import rule.
	text := "import { thing } from './thing'\n"
	got := Extract(text)
	expectSet(t, got, []string{"./thing"})
}

func TestExtractStripsQuotesAndWhitespace(t *testing.T) {
	got := Extract("import   spaced  \nconst x = require( 'quoted' )\n")
	expectSet(t, got, []string{"spaced", "quoted"})
}

func TestExtractDeduplicates(t *testing.T) {
	text := `import shared
import shared
const a = require('shared');
`
	got := Extract(text)
	count := 0
	for _, ref := range got {
		if ref == "shared" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected 'shared' exactly once, got %v", got)
	}
}

func TestExtractIsSorted(t *testing.T) {
	got := Extract("import zebra\nimport alpha\nimport middle\n")
	want := []string{"alpha", "middle", "zebra"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected sorted %v, got %v", want, got)
	}
}

func expectSet(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d entries %v, got %d (%v)", len(want), want, len(got), got)
	}

	index := make(map[string]bool, len(got))
	for _, item := range got {
		index[item] = true
	}
	for _, item := range want {
		if !index[item] {
			t.Fatalf("expected item %q in %v", item, got)
		}
	}
}
