package commands

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/cryptobuks1/qrypted/internal/domain/ciphersuite"
	"github.com/cryptobuks1/qrypted/internal/infrastructure/cryptography"
	"github.com/cryptobuks1/qrypted/internal/infrastructure/keymaker"
	"github.com/cryptobuks1/qrypted/internal/pkg/config"
	"github.com/cryptobuks1/qrypted/internal/pkg/logger"
	"github.com/cryptobuks1/qrypted/internal/pkg/secmem"
)

const saltLength = 16

// envelopeMetadata is the sidecar container persisted next to the ciphertext.
// The core leaves the container layout to the caller; the CLI stores the suite
// name, KDF, salt, IV and authentication value as hex in a JSON file.
type envelopeMetadata struct {
	ID    string `json:"id"`
	Suite string `json:"suite"`
	KDF   string `json:"kdf"`
	Salt  string `json:"salt"`
	IV    string `json:"iv"`
	Auth  string `json:"auth"`
}

// EnvelopeCommandHandler encapsulates logic for handling envelope operations via CLI.
type EnvelopeCommandHandler struct {
	processor ciphersuite.EnvelopeProcessor
	logger    logger.Logger
}

// NewEnvelopeCommandHandler initializes and returns an EnvelopeCommandHandler
// instance with configured logger and envelope processor.
func NewEnvelopeCommandHandler() (*EnvelopeCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	processor, err := cryptography.NewEnvelopeProcessor(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create envelope processor: %w", err)
	}

	return &EnvelopeCommandHandler{
		processor: processor,
		logger:    loggerInstance,
	}, nil
}

// EncryptFileCmd encrypts a file with the selected cipher suite and writes the
// ciphertext plus a JSON sidecar holding salt, IV and authentication value.
func (commandHandler *EnvelopeCommandHandler) EncryptFileCmd(cmd *cobra.Command, _ []string) {
	inputFilePath, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag ", err)
		return
	}
	outputFilePath, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag ", err)
		return
	}
	suiteName, err := cmd.Flags().GetString("suite")
	if err != nil {
		commandHandler.logger.Error("invalid suite flag ", err)
		return
	}
	kdf, err := cmd.Flags().GetString("kdf")
	if err != nil {
		commandHandler.logger.Error("invalid kdf flag ", err)
		return
	}
	password, err := cmd.Flags().GetString("password")
	if err != nil {
		commandHandler.logger.Error("invalid password flag ", err)
		return
	}

	plainText, err := os.ReadFile(filepath.Clean(inputFilePath))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	salt := make([]byte, saltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	keyMaker, err := keymaker.FromSettings(&config.KeyMakerSettings{
		KDF:       kdf,
		KeyLength: keymaker.DefaultKeyLength,
	}, []byte(password), salt)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	suite := ciphersuite.New()
	suite.SetFullName(suiteName)

	encryptedData, err := commandHandler.processor.Encrypt(suite, secmem.NewBuffer(plainText), keyMaker)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if err := os.WriteFile(outputFilePath, encryptedData, 0600); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	metadata := envelopeMetadata{
		ID:    uuid.New().String(),
		Suite: suite.FullName(),
		KDF:   kdf,
		Salt:  hex.EncodeToString(salt),
		IV:    suite.InitialVectorHex(),
		Auth:  suite.AuthenticationHex(),
	}
	metadataBytes, err := json.MarshalIndent(metadata, "", "  ")
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	metadataFilePath := outputFilePath + ".envelope.json"
	if err := os.WriteFile(metadataFilePath, metadataBytes, 0600); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Encrypted data saved to ", outputFilePath, ", envelope metadata to ", metadataFilePath)
}

// DecryptFileCmd decrypts a file using the JSON sidecar written by EncryptFileCmd.
func (commandHandler *EnvelopeCommandHandler) DecryptFileCmd(cmd *cobra.Command, _ []string) {
	inputFilePath, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag ", err)
		return
	}
	outputFilePath, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag ", err)
		return
	}
	password, err := cmd.Flags().GetString("password")
	if err != nil {
		commandHandler.logger.Error("invalid password flag ", err)
		return
	}

	metadataBytes, err := os.ReadFile(filepath.Clean(inputFilePath + ".envelope.json"))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	var metadata envelopeMetadata
	if err := json.Unmarshal(metadataBytes, &metadata); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	salt, err := hex.DecodeString(metadata.Salt)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	keyMaker, err := keymaker.FromSettings(&config.KeyMakerSettings{
		KDF:       metadata.KDF,
		KeyLength: keymaker.DefaultKeyLength,
	}, []byte(password), salt)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	suite := ciphersuite.New()
	suite.SetFullName(metadata.Suite)
	suite.SetInitialVectorHex(metadata.IV)
	suite.SetAuthenticationHex(metadata.Auth)

	encryptedData, err := os.ReadFile(filepath.Clean(inputFilePath))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	decryptedData, err := commandHandler.processor.Decrypt(suite, encryptedData, keyMaker)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	defer decryptedData.Wipe()

	if err := os.WriteFile(outputFilePath, decryptedData.Bytes(), 0600); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Decrypted data saved to ", outputFilePath)
}

// ListSuitesCmd prints the supported algorithm and operation matrix.
func (commandHandler *EnvelopeCommandHandler) ListSuitesCmd(_ *cobra.Command, _ []string) {
	for _, algorithmName := range ciphersuite.AlgorithmNames {
		for _, operationCode := range ciphersuite.OperationCodes {
			fmt.Printf("%s/%s\n", algorithmName, operationCode)
		}
	}
}

// ValidateKeyLengthCmd prints the nearest valid key length for an algorithm.
func (commandHandler *EnvelopeCommandHandler) ValidateKeyLengthCmd(cmd *cobra.Command, _ []string) {
	algorithmName, err := cmd.Flags().GetString("algorithm")
	if err != nil {
		commandHandler.logger.Error("invalid algorithm flag ", err)
		return
	}
	keyLength, err := cmd.Flags().GetInt("key-length")
	if err != nil {
		commandHandler.logger.Error("invalid key-length flag ", err)
		return
	}

	algorithm := ciphersuite.ParseAlgorithm(algorithmName)
	if algorithm == ciphersuite.UnknownAlgorithm {
		commandHandler.logger.Error("unknown algorithm ", algorithmName)
		return
	}

	fmt.Printf("%s: %d bytes\n", algorithm, algorithm.ValidateKeyLength(keyLength))
}

// InitEnvelopeCommands registers envelope-related commands
func InitEnvelopeCommands(rootCmd *cobra.Command) error {
	handler, err := NewEnvelopeCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create envelope command handler %w", err)
	}

	var encryptFileCmd = &cobra.Command{
		Use:   "encrypt-file",
		Short: "Encrypt a file with a password-derived key",
		Run:   handler.EncryptFileCmd,
	}
	encryptFileCmd.Flags().StringP("input-file", "", "", "Path to input file that needs to be encrypted")
	encryptFileCmd.Flags().StringP("output-file", "", "", "Path to encrypted output file")
	encryptFileCmd.Flags().StringP("suite", "", "AES/GCM", "Cipher suite full name, e.g. AES/GCM or Twofish/CBC")
	encryptFileCmd.Flags().StringP("kdf", "", "argon2", "Key derivation function (argon2, scrypt or pbkdf2)")
	encryptFileCmd.Flags().StringP("password", "", "", "Password to derive the key from")
	rootCmd.AddCommand(encryptFileCmd)

	var decryptFileCmd = &cobra.Command{
		Use:   "decrypt-file",
		Short: "Decrypt a file using its envelope metadata sidecar",
		Run:   handler.DecryptFileCmd,
	}
	decryptFileCmd.Flags().StringP("input-file", "", "", "Input encrypted file path")
	decryptFileCmd.Flags().StringP("output-file", "", "", "Path to decrypted output file")
	decryptFileCmd.Flags().StringP("password", "", "", "Password to derive the key from")
	rootCmd.AddCommand(decryptFileCmd)

	var listSuitesCmd = &cobra.Command{
		Use:   "list-suites",
		Short: "List the supported cipher suites",
		Run:   handler.ListSuitesCmd,
	}
	rootCmd.AddCommand(listSuitesCmd)

	var validateKeyLengthCmd = &cobra.Command{
		Use:   "validate-key-length",
		Short: "Show the nearest valid key length for an algorithm",
		Run:   handler.ValidateKeyLengthCmd,
	}
	validateKeyLengthCmd.Flags().StringP("algorithm", "", "AES", "Algorithm name, e.g. AES or Blowfish")
	validateKeyLengthCmd.Flags().IntP("key-length", "", 32, "Requested key length in bytes")
	rootCmd.AddCommand(validateKeyLengthCmd)

	return nil
}
