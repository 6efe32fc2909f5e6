package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// RSACommandHandler encapsulates logic for handling textbook RSA operations via CLI.
type RSACommandHandler struct{}

// NewRSACommandHandler initializes a new RSACommandHandler.
func NewRSACommandHandler() *RSACommandHandler {
	return &RSACommandHandler{}
}

// GenerateKeysCmd prints a fresh key pair and optionally persists it in a selected directory
func (commandHandler *RSACommandHandler) GenerateKeysCmd(cmd *cobra.Command, _ []string) error {
	keyDir, err := cmd.Flags().GetString("key-dir")
	if err != nil {
		return fmt.Errorf("invalid key-dir flag: %w", err)
	}

	services, loggerInstance, err := setupServices(cmd)
	if err != nil {
		return err
	}

	keys, err := services.KeyGeneration.GenerateKeys(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to generate keys: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Public key: %s\nPrivate key: %s\n", keys.PublicKey, keys.PrivateKey)

	if keyDir == "" {
		return nil
	}

	uniqueID := uuid.New().String()
	publicKeyFilePath := filepath.Join(keyDir, fmt.Sprintf("%s-public-key.txt", uniqueID))
	if err := os.WriteFile(publicKeyFilePath, []byte(keys.PublicKey+"\n"), 0600); err != nil {
		return fmt.Errorf("failed to write public key: %w", err)
	}

	privateKeyFilePath := filepath.Join(keyDir, fmt.Sprintf("%s-private-key.txt", uniqueID))
	if err := os.WriteFile(privateKeyFilePath, []byte(keys.PrivateKey+"\n"), 0600); err != nil {
		return fmt.Errorf("failed to write private key: %w", err)
	}

	loggerInstance.Info("Key pair ", uniqueID, " written to ", keyDir)
	return nil
}

// EncryptCmd encrypts a short text with a key string
func (commandHandler *RSACommandHandler) EncryptCmd(cmd *cobra.Command, _ []string) error {
	plaintext, err := readInput(cmd, "text")
	if err != nil {
		return err
	}
	key, err := readKey(cmd)
	if err != nil {
		return err
	}

	services, loggerInstance, err := setupServices(cmd)
	if err != nil {
		return err
	}

	ciphertext, err := services.Cipher.Encrypt(cmd.Context(), plaintext, key)
	if err != nil {
		return fmt.Errorf("failed to encrypt: %w", err)
	}

	return writeOutput(cmd, loggerInstance, ciphertext)
}

// DecryptCmd decrypts a base-36 ciphertext with a key string
func (commandHandler *RSACommandHandler) DecryptCmd(cmd *cobra.Command, _ []string) error {
	ciphertext, err := readInput(cmd, "ciphertext")
	if err != nil {
		return err
	}
	key, err := readKey(cmd)
	if err != nil {
		return err
	}

	services, loggerInstance, err := setupServices(cmd)
	if err != nil {
		return err
	}

	plaintext, err := services.Cipher.Decrypt(cmd.Context(), strings.TrimSpace(ciphertext), key)
	if err != nil {
		return fmt.Errorf("failed to decrypt: %w", err)
	}

	return writeOutput(cmd, loggerInstance, plaintext)
}

// InitRSACommands initializes and registers the key generation and cipher commands
func InitRSACommands(rootCmd *cobra.Command) error {
	handler := NewRSACommandHandler()

	generateKeysCmd := &cobra.Command{
		Use:   "generate-keys",
		Short: "Generate a textbook RSA key pair",
		RunE:  handler.GenerateKeysCmd,
	}
	generateKeysCmd.Flags().String("key-dir", "", "Directory to store the key strings in")
	rootCmd.AddCommand(generateKeysCmd)

	encryptCmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a short text with a key string",
		RunE:  handler.EncryptCmd,
	}
	encryptCmd.Flags().String("text", "", "Plaintext to encrypt")
	encryptCmd.Flags().String("input-file", "", "File holding the plaintext")
	encryptCmd.Flags().String("key", "", "Key string \"<exponent> <modulus>\"")
	encryptCmd.Flags().String("key-file", "", "File holding the key string")
	encryptCmd.Flags().String("output-file", "", "File to write the ciphertext to")
	encryptCmd.MarkFlagsMutuallyExclusive("text", "input-file")
	encryptCmd.MarkFlagsOneRequired("text", "input-file")
	encryptCmd.MarkFlagsMutuallyExclusive("key", "key-file")
	encryptCmd.MarkFlagsOneRequired("key", "key-file")
	rootCmd.AddCommand(encryptCmd)

	decryptCmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a base-36 ciphertext with a key string",
		RunE:  handler.DecryptCmd,
	}
	decryptCmd.Flags().String("ciphertext", "", "Base-36 ciphertext to decrypt")
	decryptCmd.Flags().String("input-file", "", "File holding the ciphertext")
	decryptCmd.Flags().String("key", "", "Key string \"<exponent> <modulus>\"")
	decryptCmd.Flags().String("key-file", "", "File holding the key string")
	decryptCmd.Flags().String("output-file", "", "File to write the plaintext to")
	decryptCmd.MarkFlagsMutuallyExclusive("ciphertext", "input-file")
	decryptCmd.MarkFlagsOneRequired("ciphertext", "input-file")
	decryptCmd.MarkFlagsMutuallyExclusive("key", "key-file")
	decryptCmd.MarkFlagsOneRequired("key", "key-file")
	rootCmd.AddCommand(decryptCmd)

	return nil
}
