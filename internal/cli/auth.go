package cli

import (
	"context"
	"fmt"
)

// User-facing copy, matching the gateway product messages.
const (
	msgEmptyAPIKey   = "Por favor, insira sua API Key"
	msgInvalidAPIKey = "API Key inválida. Verifique suas credenciais e tente novamente."
)

// getSimpleText, getAPIKey, getInt and getAmount are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getAPIKey     = GetAPIKey
	getInt        = GetInt
	getAmount     = GetAmount
)

// Login prompts for an API key and validates it against the gateway.
//
// A failed validation is a user-facing message, not an error: the session
// reports the outcome as a boolean and this command translates it. Only
// input I/O failures are returned.
func (a *App) Login(ctx context.Context) error {
	key, err := getAPIKey(a.out)
	if err != nil {
		return err
	}
	if key == "" {
		fmt.Fprintln(a.out, msgEmptyAPIKey)
		return nil
	}

	if !a.session.Login(ctx, key) {
		fmt.Fprintln(a.out, msgInvalidAPIKey)
		return nil
	}

	if acc := a.session.Account(); acc != nil {
		fmt.Fprintf(a.out, "Autenticado como %s\n", acc.Name)
	} else {
		fmt.Fprintln(a.out, "Autenticado")
	}
	return nil
}

// Logout clears the stored credential and the in-memory session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	a.list = nil
	fmt.Fprintln(a.out, "Sessão encerrada")
	return nil
}

// Signup registers a new merchant account and prints the generated API key.
func (a *App) Signup(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Nome da conta", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "E-mail", a.out)
	if err != nil {
		return err
	}

	acc, err := a.createAccount(ctx, name, email)
	if err != nil {
		fmt.Fprintln(a.out, "Não foi possível criar a conta. Tente novamente.")
		a.log.Error(ctx, "account creation failed", "error", err)
		return nil
	}

	fmt.Fprintf(a.out, "Conta criada: %s\n", acc.Name)
	fmt.Fprintf(a.out, "API Key: %s\n", acc.APIKey)
	fmt.Fprintln(a.out, "Guarde a chave com segurança; use 'login' para ativá-la.")
	return nil
}

// Account shows the account bound to the active credential.
func (a *App) ShowAccount(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, msgNoCredential)
		return nil
	}

	acc := a.session.Account()
	if acc == nil {
		var err error
		acc, err = a.fetchOwnAccount(ctx)
		if err != nil {
			fmt.Fprintln(a.out, msgInvalidAPIKey)
			a.log.Error(ctx, "account lookup failed", "error", err)
			return nil
		}
	}

	fmt.Fprintf(a.out, "ID:    %s\n", acc.ID)
	fmt.Fprintf(a.out, "Nome:  %s\n", acc.Name)
	if acc.Email != "" {
		fmt.Fprintf(a.out, "Email: %s\n", acc.Email)
	}
	return nil
}
