// Package main provides the ifcforge CLI for generating parametric
// IFC models of mailboxes, mailbox banks, metal plates and tables.
package main

func main() {
	Execute()
}
