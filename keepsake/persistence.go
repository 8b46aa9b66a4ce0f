package keepsake

import (
	"fmt"
	"io/ioutil"
	"os"

	"gopkg.in/yaml.v3"
)

var saveFile = "./savegame.yml"

type LocalData struct {
	Story StoryProgress
}

// ReadLocalData loads the save file. The second return is false when there
// is no usable save (no file, or one that won't parse).
func ReadLocalData() (LocalData, bool) {
	persistent := LocalData{}

	data, err := ioutil.ReadFile(saveFile)
	if err != nil {
		return persistent, false
	}

	if err := yaml.Unmarshal(data, &persistent); err != nil {
		fmt.Printf("[Persistence] error loading save data: %v\n", err)
		return LocalData{}, false
	}
	if persistent.Story.SceneKey == "" {
		return LocalData{}, false
	}

	return persistent, true
}

func (data *LocalData) WriteToFile() error {
	yml, err := yaml.Marshal(&data)
	if err != nil {
		fmt.Printf("[Persistence] error: %v\n", err)
		return err
	}

	f, err := os.Create(saveFile)
	if err != nil {
		fmt.Printf("[Persistence] error writing save data: %v\n", err)
		return err
	}
	defer f.Close()
	_, err = f.Write(yml)
	return err
}
